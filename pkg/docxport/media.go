package docxport

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	// Register the image formats that appear in template packages so
	// DecodeConfig can sniff their dimensions.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"go.uber.org/zap"
)

// extensionContentTypes maps media file extensions to their content types.
var extensionContentTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
	"tif":  "image/tiff",
	"svg":  "image/svg+xml",
	"webp": "image/webp",
	"emf":  "image/x-emf",
	"wmf":  "image/x-wmf",
}

var formatExtensions = map[string]string{
	"png":  "png",
	"jpeg": "jpg",
	"gif":  "gif",
	"bmp":  "bmp",
	"tiff": "tiff",
	"webp": "webp",
}

// sniffMedia builds the Media record for an image part. The format and pixel
// size come from the image bytes themselves; when the bytes cannot be decoded
// (vector formats like EMF, or anything exotic) the target path's extension
// decides, then the package's content-type declarations, unless strict mode
// makes the lookup a failure.
func sniffMedia(data []byte, target string, strict bool, ctypes *ContentTypes) (*Media, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err == nil {
		ext := formatExtensions[format]
		if ext == "" {
			ext = format
		}
		return &Media{
			Data:        data,
			Extension:   ext,
			ContentType: extensionContentTypes[ext],
			Width:       cfg.Width,
			Height:      cfg.Height,
		}, nil
	}

	ext := strings.ToLower(strings.TrimPrefix(pathExt(target), "."))
	contentType, known := extensionContentTypes[ext]
	if known {
		if strict && !vectorExtension(ext) {
			// Raster formats should have decoded; refusing here catches
			// truncated or mislabeled media early.
			return nil, fmt.Errorf("cannot decode media '%s': %w", target, err)
		}
	} else if declared := ctypes.TypeForPart(target); declared != "" {
		// The package declares a type for this part; trust the
		// declaration even in strict mode.
		contentType = declared
	} else {
		if strict {
			return nil, fmt.Errorf("cannot determine media type of '%s': %w", target, err)
		}
		contentType = "application/octet-stream"
	}

	Logger().Debug("media not decodable, typed by extension",
		zap.String("target", target),
		zap.String("extension", ext))

	return &Media{
		Data:        data,
		Extension:   ext,
		ContentType: contentType,
	}, nil
}

func vectorExtension(ext string) bool {
	switch ext {
	case "svg", "emf", "wmf":
		return true
	}
	return false
}

func pathExt(name string) string {
	if idx := strings.LastIndex(name, "."); idx != -1 {
		return name[idx:]
	}
	return ""
}
