package dao

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/FAB-TCG-Colombia/ChallongeAnalisis/models"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	resp, _ := args.Get(0).(*s3.PutObjectOutput)
	return resp, args.Error(1)
}

func TestR2SaveTournaments_UploadsCSV(t *testing.T) {
	mockS3 := new(MockS3Client)
	dao := NewR2DAOWithClient("fabco-tournaments", "exports/tournaments_fabco_2024.csv", mockS3)

	mockS3.On("PutObject", mock.Anything, mock.MatchedBy(func(input *s3.PutObjectInput) bool {
		bodyBytes, _ := io.ReadAll(input.Body)
		bodyStr := string(bodyBytes)
		return *input.Bucket == "fabco-tournaments" &&
			*input.Key == "exports/tournaments_fabco_2024.csv" &&
			strings.HasPrefix(bodyStr, expectedHeader+"\n") &&
			strings.Contains(bodyStr, "1,Sample")
	})).Return(&s3.PutObjectOutput{}, nil)

	err := dao.SaveTournaments([]models.Tournament{{Id: "1", Name: "Sample"}})
	assert.NoError(t, err)
	mockS3.AssertExpectations(t)
}

func TestR2SaveTournaments_PutObjectError(t *testing.T) {
	mockS3 := new(MockS3Client)
	dao := NewR2DAOWithClient("fabco-tournaments", "exports/out.csv", mockS3)

	mockS3.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("put failed"))

	err := dao.SaveTournaments([]models.Tournament{{Id: "1"}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "put failed")
	mockS3.AssertExpectations(t)
}
