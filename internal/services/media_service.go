package services

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/google/uuid"
	"github.com/imadhurgupta/bio-keeper/internal/helpers"
	"github.com/imadhurgupta/bio-keeper/internal/models"
)

// MediaService uploads avatars to object storage and propagates the new URL
// into the profile mirror so no re-fetch is needed by the client.
type MediaService struct {
	cld         *cloudinary.Cloudinary
	accountRepo models.AccountRepo
}

func NewMediaService(cld *cloudinary.Cloudinary, accountRepo models.AccountRepo) *MediaService {
	return &MediaService{
		cld:         cld,
		accountRepo: accountRepo,
	}
}

func (ms *MediaService) UploadAvatar(ctx context.Context, ownerId uuid.UUID, file io.Reader, accessToken string) (string, error) {
	if ownerId == uuid.Nil {
		return "", fmt.Errorf("%w: invalid owner ID", models.ErrValidation)
	}

	url, err := helpers.UploadAvatar(ctx, ms.cld, ownerId.String(), file)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUpload, err)
	}

	if _, err := ms.accountRepo.UpdateProfile(ctx, map[string]interface{}{
		"photo_url": url,
	}, ownerId, accessToken); err != nil {
		return "", err
	}

	return url, nil
}
