package testutil

import (
	"context"

	"savebot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Upsert(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) GetLanguage(userID int64) (domain.Language, error) {
	args := m.Called(userID)
	return args.Get(0).(domain.Language), args.Error(1)
}

func (m *MockUserRepository) HasLanguage(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SetLanguage(userID int64, lang domain.Language) error {
	args := m.Called(userID, lang)
	return args.Error(0)
}

func (m *MockUserRepository) GetFormat(userID int64) (domain.Format, error) {
	args := m.Called(userID)
	return args.Get(0).(domain.Format), args.Error(1)
}

func (m *MockUserRepository) SetFormat(userID int64, format domain.Format) error {
	args := m.Called(userID, format)
	return args.Error(0)
}

func (m *MockUserRepository) AllUsers() ([]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockStateRepository is a mock for repository.StateRepository
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) Set(userID int64, state domain.State) error {
	args := m.Called(userID, state)
	return args.Error(0)
}

func (m *MockStateRepository) Get(userID int64) (domain.State, error) {
	args := m.Called(userID)
	return args.Get(0).(domain.State), args.Error(1)
}

func (m *MockStateRepository) Clear(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockSettingsRepository is a mock for repository.SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetMediaCaption() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockSettingsRepository) SetMediaCaption(value string) error {
	args := m.Called(value)
	return args.Error(0)
}

// MockMessenger is a mock for service.Messenger
type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) Send(chatID int64, text string) (int, error) {
	args := m.Called(chatID, text)
	return args.Int(0), args.Error(1)
}

func (m *MockMessenger) Edit(chatID int64, messageID int, text string) error {
	args := m.Called(chatID, messageID, text)
	return args.Error(0)
}

func (m *MockMessenger) Delete(chatID int64, messageID int) error {
	args := m.Called(chatID, messageID)
	return args.Error(0)
}

func (m *MockMessenger) SendFile(chatID int64, path, caption string) error {
	args := m.Called(chatID, path, caption)
	return args.Error(0)
}

// MockMembershipClient is a mock for service.MembershipClient
type MockMembershipClient struct {
	mock.Mock
}

func (m *MockMembershipClient) MemberStatus(channel string, userID int64) (string, error) {
	args := m.Called(channel, userID)
	return args.String(0), args.Error(1)
}

// MockFetcher is a mock for service.Fetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, url, workDir string) (string, error) {
	args := m.Called(ctx, url, workDir)
	return args.String(0), args.Error(1)
}

// MockConverter is a mock for service.Converter
type MockConverter struct {
	mock.Mock
}

func (m *MockConverter) Convert(ctx context.Context, source string, format domain.Format) (string, error) {
	args := m.Called(ctx, source, format)
	return args.String(0), args.Error(1)
}

// MockDownloads is a mock for handler.Downloads
type MockDownloads struct {
	mock.Mock
}

func (m *MockDownloads) Handle(ctx context.Context, chatID, senderID int64, url string, lang domain.Language) error {
	args := m.Called(ctx, chatID, senderID, url, lang)
	return args.Error(0)
}

// MockBroadcasts is a mock for handler.Broadcasts
type MockBroadcasts struct {
	mock.Mock
}

func (m *MockBroadcasts) Broadcast(text string) (int, int, error) {
	args := m.Called(text)
	return args.Int(0), args.Int(1), args.Error(2)
}
