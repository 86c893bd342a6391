package dao

import (
	"context"

	"github.com/FAB-TCG-Colombia/ChallongeAnalisis/models"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// TournamentDAO persists an ordered sequence of normalized tournaments as a
// fixed-column CSV. Implementations overwrite any previous export.
type TournamentDAO interface {
	SaveTournaments(tournaments []models.Tournament) error
}
