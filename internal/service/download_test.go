package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"savebot/internal/domain"
	"savebot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type downloadFixture struct {
	users     *testutil.MockUserRepository
	settings  *testutil.MockSettingsRepository
	client    *testutil.MockMembershipClient
	fetcher   *testutil.MockFetcher
	converter *testutil.MockConverter
	messenger *testutil.MockMessenger
	service   *DownloadService
}

func newDownloadFixture(maxSizeMB int64) *downloadFixture {
	f := &downloadFixture{
		users:     new(testutil.MockUserRepository),
		settings:  new(testutil.MockSettingsRepository),
		client:    new(testutil.MockMembershipClient),
		fetcher:   new(testutil.MockFetcher),
		converter: new(testutil.MockConverter),
		messenger: new(testutil.MockMessenger),
	}
	gate := NewSubscriptionService(f.client, "@channel", testutil.NewTestLogger())
	f.service = NewDownloadService(
		f.users, f.settings, gate, f.fetcher, f.converter, f.messenger,
		DownloadConfig{RequiredChannel: "@channel", MaxFileSizeMB: maxSizeMB},
		testutil.NewTestLogger(),
	)
	return f
}

// writeSparseFile creates a file of the given size without materializing it
func writeSparseFile(t *testing.T, size int64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "result.mp4")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, file.Truncate(size))
	require.NoError(t, file.Close())
	return path
}

func TestDownloadService_NotSubscribed(t *testing.T) {
	f := newDownloadFixture(2048)
	f.client.On("MemberStatus", "@channel", int64(7)).Return("left", nil)
	f.messenger.On("Send", int64(7), "Please subscribe to @channel and try again.").Return(1, nil)

	err := f.service.Handle(context.Background(), 7, 7, "http://x.test/v/1", domain.LanguageEN)

	assert.NoError(t, err)
	f.fetcher.AssertNumberOfCalls(t, "Fetch", 0)
	f.messenger.AssertExpectations(t)
}

func TestDownloadService_Success(t *testing.T) {
	f := newDownloadFixture(2048)
	result := writeSparseFile(t, 1024*1024)

	f.client.On("MemberStatus", "@channel", int64(7)).Return("member", nil)
	f.messenger.On("Send", int64(7), "Downloading media, please wait...").Return(5, nil)

	var workDir string
	f.fetcher.On("Fetch", mock.Anything, "http://x.test/v/1", mock.Anything).
		Run(func(args mock.Arguments) { workDir = args.String(2) }).
		Return(result, nil)
	f.users.On("GetFormat", int64(7)).Return(domain.FormatAuto, nil)
	f.converter.On("Convert", mock.Anything, result, domain.FormatAuto).Return(result, nil)
	f.settings.On("GetMediaCaption").Return("my caption", nil)
	f.messenger.On("Edit", int64(7), 5, "Uploading file (1.0MB)...").Return(nil)
	f.messenger.On("SendFile", int64(7), result, "my caption").Return(nil)
	f.messenger.On("Delete", int64(7), 5).Return(nil)

	err := f.service.Handle(context.Background(), 7, 7, "http://x.test/v/1", domain.LanguageEN)

	assert.NoError(t, err)
	f.messenger.AssertExpectations(t)

	// Scratch workspace removed after delivery
	_, statErr := os.Stat(workDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDownloadService_EmptyCaptionFallsBack(t *testing.T) {
	f := newDownloadFixture(2048)
	result := writeSparseFile(t, 1024)

	f.client.On("MemberStatus", "@channel", int64(7)).Return("member", nil)
	f.messenger.On("Send", mock.Anything, mock.Anything).Return(5, nil)
	f.fetcher.On("Fetch", mock.Anything, mock.Anything, mock.Anything).Return(result, nil)
	f.users.On("GetFormat", int64(7)).Return(domain.FormatAuto, nil)
	f.converter.On("Convert", mock.Anything, result, domain.FormatAuto).Return(result, nil)
	f.settings.On("GetMediaCaption").Return("   ", nil)
	f.messenger.On("Edit", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.messenger.On("SendFile", int64(7), result, "Done.").Return(nil)
	f.messenger.On("Delete", int64(7), 5).Return(nil)

	err := f.service.Handle(context.Background(), 7, 7, "http://x.test/v/1", domain.LanguageEN)

	assert.NoError(t, err)
	f.messenger.AssertExpectations(t)
}

func TestDownloadService_TooBig(t *testing.T) {
	f := newDownloadFixture(1)
	result := writeSparseFile(t, 2*1024*1024)

	f.client.On("MemberStatus", "@channel", int64(7)).Return("member", nil)
	f.messenger.On("Send", mock.Anything, mock.Anything).Return(5, nil)
	f.fetcher.On("Fetch", mock.Anything, mock.Anything, mock.Anything).Return(result, nil)
	f.users.On("GetFormat", int64(7)).Return(domain.FormatAuto, nil)
	f.converter.On("Convert", mock.Anything, result, domain.FormatAuto).Return(result, nil)
	f.messenger.On("Edit", int64(7), 5, "File is too large: 2.0MB. Limit: 1MB.").Return(nil)

	err := f.service.Handle(context.Background(), 7, 7, "http://x.test/v/1", domain.LanguageEN)

	assert.NoError(t, err)
	f.messenger.AssertNumberOfCalls(t, "SendFile", 0)
	f.messenger.AssertExpectations(t)
}

func TestDownloadService_FetchFailureReportedAndCleanedUp(t *testing.T) {
	f := newDownloadFixture(2048)

	f.client.On("MemberStatus", "@channel", int64(7)).Return("member", nil)
	f.messenger.On("Send", mock.Anything, mock.Anything).Return(5, nil)

	var workDir string
	f.fetcher.On("Fetch", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { workDir = args.String(2) }).
		Return("", errors.New("download failed. yt-dlp: no formats | gallery-dl: 404"))
	f.messenger.On("Edit", int64(7), 5, "Error: download failed. yt-dlp: no formats | gallery-dl: 404").Return(nil)

	err := f.service.Handle(context.Background(), 7, 7, "http://x.test/v/1", domain.LanguageEN)

	assert.NoError(t, err)
	f.messenger.AssertNumberOfCalls(t, "SendFile", 0)
	f.messenger.AssertExpectations(t)

	_, statErr := os.Stat(workDir)
	assert.True(t, os.IsNotExist(statErr), "scratch workspace must be removed on failure")
}

func TestDownloadService_TranscodeFailureReported(t *testing.T) {
	f := newDownloadFixture(2048)
	result := writeSparseFile(t, 1024)

	f.client.On("MemberStatus", "@channel", int64(7)).Return("member", nil)
	f.messenger.On("Send", mock.Anything, mock.Anything).Return(5, nil)
	f.fetcher.On("Fetch", mock.Anything, mock.Anything, mock.Anything).Return(result, nil)
	f.users.On("GetFormat", int64(7)).Return(domain.FormatMP4, nil)
	f.converter.On("Convert", mock.Anything, result, domain.FormatMP4).Return("", errors.New("ffmpeg failed: boom"))
	f.messenger.On("Edit", int64(7), 5, "Error: ffmpeg failed: boom").Return(nil)

	err := f.service.Handle(context.Background(), 7, 7, "http://x.test/v/1", domain.LanguageEN)

	assert.NoError(t, err)
	f.messenger.AssertNumberOfCalls(t, "SendFile", 0)
	f.messenger.AssertExpectations(t)
}
