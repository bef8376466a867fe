package helpers

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const AvatarFolder = "profile_pictures"

// AvatarPublicID is the deterministic storage path for a user's avatar. One
// avatar per owner; re-upload overwrites the previous one.
func AvatarPublicID(ownerId string) string {
	return fmt.Sprintf("%s/%s", AvatarFolder, ownerId)
}

// UploadAvatar stores the image at the owner's fixed public ID and returns
// the durable retrieval URL.
func UploadAvatar(ctx context.Context, cld *cloudinary.Cloudinary, ownerId string, file io.Reader) (string, error) {
	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:  AvatarPublicID(ownerId),
		Overwrite: api.Bool(true),
		Tags:      []string{"bio-keeper"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar for %s: %v", ownerId, err)
	}

	return result.SecureURL, nil
}
