package helper

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
)

func InitCloudinary() (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
}

// ExtractPublicID recupera o public_id a partir da URL da imagem do produto.
func ExtractPublicID(url string) string {
	parts := strings.Split(url, "/")
	n := len(parts)
	if n < 4 {
		return ""
	}
	publicID := strings.Join(parts[n-2:n], "/")
	return strings.TrimSuffix(publicID, filepath.Ext(publicID))
}
