package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bloom/internal/domain"
	"bloom/internal/prompt"
	"bloom/internal/service"
	"bloom/mocks"
)

const testMaxUpload = 1024

func upload(name, body, question string) service.UploadInput {
	return service.UploadInput{
		Filename: name,
		Size:     int64(len(body)),
		File:     strings.NewReader(body),
		Question: question,
	}
}

func TestAssistantService_Chat(t *testing.T) {
	gw := new(mocks.MockModelGateway)
	gw.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "how do I budget?")
	})).Return("Start with 50/30/20.", nil)

	svc := service.NewAssistantService(gw, new(mocks.MockTextExtractor), testMaxUpload)
	reply, err := svc.Chat(context.Background(), "how do I budget?")

	require.NoError(t, err)
	assert.Equal(t, "Start with 50/30/20.", reply)
	gw.AssertExpectations(t)
}

func TestAssistantService_Chat_EmptyMessage(t *testing.T) {
	gw := new(mocks.MockModelGateway)
	svc := service.NewAssistantService(gw, new(mocks.MockTextExtractor), testMaxUpload)

	_, err := svc.Chat(context.Background(), "   ")

	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
	gw.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestAssistantService_Chat_UpstreamFailure(t *testing.T) {
	gw := new(mocks.MockModelGateway)
	gw.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))
	svc := service.NewAssistantService(gw, new(mocks.MockTextExtractor), testMaxUpload)

	_, err := svc.Chat(context.Background(), "hi")

	require.ErrorIs(t, err, domain.ErrUpstreamFailure)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestAssistantService_Chat_ConfigurationMissing(t *testing.T) {
	gw := new(mocks.MockModelGateway)
	gw.On("Generate", mock.Anything, mock.Anything).Return("", domain.ErrConfigurationMissing)
	svc := service.NewAssistantService(gw, new(mocks.MockTextExtractor), testMaxUpload)

	_, err := svc.Chat(context.Background(), "hi")

	assert.ErrorIs(t, err, domain.ErrConfigurationMissing)
	assert.NotErrorIs(t, err, domain.ErrUpstreamFailure)
}

func TestAssistantService_Insights(t *testing.T) {
	gw := new(mocks.MockModelGateway)
	gw.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "Total Income: $4000")
	})).Return("1. Save more.", nil)
	svc := service.NewAssistantService(gw, new(mocks.MockTextExtractor), testMaxUpload)

	reply, err := svc.Insights(context.Background(), "Total Income: $4000")

	require.NoError(t, err)
	assert.Equal(t, "1. Save more.", reply)
}

func TestAssistantService_ProcessFile_TwoStages(t *testing.T) {
	gw := new(mocks.MockModelGateway)
	ext := new(mocks.MockTextExtractor)
	ext.On("Extract", []byte("%PDF"), "statement.pdf").Return("Balance: 1200", nil)
	gw.On("Generate", mock.Anything, prompt.DocumentSummary("Balance: 1200")).Return("Closing balance 1200.", nil).Once()
	gw.On("Generate", mock.Anything, prompt.DocumentAnswer("Closing balance 1200.", "What is my balance?")).Return("Your balance is 1200.", nil).Once()

	svc := service.NewAssistantService(gw, ext, testMaxUpload)
	reply, err := svc.ProcessFile(context.Background(), upload("statement.pdf", "%PDF", "What is my balance?"))

	require.NoError(t, err)
	assert.Equal(t, "Your balance is 1200.", reply)
	gw.AssertNumberOfCalls(t, "Generate", 2)
}

func TestAssistantService_ProcessFile_RefusalSkipsSecondStage(t *testing.T) {
	gw := new(mocks.MockModelGateway)
	ext := new(mocks.MockTextExtractor)
	ext.On("Extract", mock.Anything, "poem.pdf").Return("Roses are red", nil)
	refusal := "Sorry, I cannot help with the provided file."
	gw.On("Generate", mock.Anything, mock.Anything).Return(refusal, nil).Once()

	svc := service.NewAssistantService(gw, ext, testMaxUpload)
	reply, err := svc.ProcessFile(context.Background(), upload("poem.pdf", "%PDF", "How much did I spend?"))

	require.NoError(t, err)
	assert.Equal(t, refusal, reply)
	gw.AssertNumberOfCalls(t, "Generate", 1)
}

func TestAssistantService_ProcessFile_ExtractorError(t *testing.T) {
	gw := new(mocks.MockModelGateway)
	ext := new(mocks.MockTextExtractor)
	ext.On("Extract", mock.Anything, "notes.txt").Return("", domain.ErrUnsupportedFormat)

	svc := service.NewAssistantService(gw, ext, testMaxUpload)
	_, err := svc.ProcessFile(context.Background(), upload("notes.txt", "hello", ""))

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	gw.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestAssistantService_ProcessFile_TooLarge(t *testing.T) {
	gw := new(mocks.MockModelGateway)
	ext := new(mocks.MockTextExtractor)
	svc := service.NewAssistantService(gw, ext, 4)

	_, err := svc.ProcessFile(context.Background(), service.UploadInput{
		Filename: "big.csv",
		Size:     -1,
		File:     strings.NewReader("0123456789"),
	})

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	ext.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestAssistantService_ProcessFile_SecondStageFailure(t *testing.T) {
	gw := new(mocks.MockModelGateway)
	ext := new(mocks.MockTextExtractor)
	ext.On("Extract", mock.Anything, mock.Anything).Return("text", nil)
	gw.On("Generate", mock.Anything, mock.Anything).Return("summary", nil).Once()
	gw.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("503 overloaded")).Once()

	svc := service.NewAssistantService(gw, ext, testMaxUpload)
	_, err := svc.ProcessFile(context.Background(), upload("s.csv", "a,b", ""))

	require.ErrorIs(t, err, domain.ErrUpstreamFailure)
	assert.Contains(t, err.Error(), "503 overloaded")
}

func TestAssistantService_Ping(t *testing.T) {
	gw := new(mocks.MockModelGateway)
	gw.On("Generate", mock.Anything, prompt.GatewayCheck).Return("Rayleigh scattering.", nil)
	svc := service.NewAssistantService(gw, new(mocks.MockTextExtractor), testMaxUpload)

	reply, err := svc.Ping(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Rayleigh scattering.", reply)
}
