// Package attachments builds object keys for uploads and turns stored
// attachment references back into keys and display names.
package attachments

import (
	"fmt"
	"net/url"
	"path"
	"slices"
	"strings"

	"github.com/google/uuid"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// DefaultPrefix is the folder holding one sub-folder per order.
const DefaultPrefix = "adjuntos_pedidos/"

const s3HostMarker = ".amazonaws.com/"

var uploadExtensions = []string{".pdf", ".jpg", ".jpeg", ".png", ".xlsx", ".docx"}

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// Reference is a stored attachment resolved for display.
type Reference struct {
	// Raw is the value found in the record.
	Raw string
	// Key is the object key, or "" when Raw is a foreign URL.
	Key         string
	DisplayName string
	IsImage     bool
}

var keyUnsafe = strings.NewReplacer(" ", "_", ",", "_", ";", "_", "?", "_", "#", "_", "%", "_")

// NewKey builds "<prefix><id>/<base>_<4 hex>.<ext>" for an uploaded file.
// Spaces and list or URL separators in the base name become underscores, so a
// key always survives a comma-joined attachment cell.
func NewKey(prefix string, id kernel.OrderID, filename string) (string, error) {
	filename = path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	ext := strings.ToLower(path.Ext(filename))
	if !slices.Contains(uploadExtensions, ext) {
		return "", errs.NewValueIsInvalidErrorWithCause("attachment file",
			fmt.Errorf("%q is not one of %s", filename, strings.Join(uploadExtensions, ", ")))
	}

	base := keyUnsafe.Replace(strings.TrimSpace(strings.TrimSuffix(filename, path.Ext(filename))))
	if base == "" {
		base = "adjunto"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:4]

	return fmt.Sprintf("%s%s/%s_%s%s", prefix, id, base, suffix, path.Ext(filename)), nil
}

// Resolve extracts the object key and file name from a stored reference.
// References are either full object URLs or bare keys.
func Resolve(raw string) Reference {
	raw = strings.TrimSpace(raw)
	ref := Reference{Raw: raw}

	switch {
	case strings.Contains(raw, s3HostMarker):
		_, after, _ := strings.Cut(raw, s3HostMarker)
		key, _, _ := strings.Cut(after, "?")
		if unescaped, err := url.PathUnescape(key); err == nil {
			key = unescaped
		}
		ref.Key = key
	case !strings.Contains(raw, "://"):
		ref.Key = strings.TrimPrefix(raw, "/")
	}

	ref.DisplayName = DisplayName(raw)
	ref.IsImage = IsImage(ref.DisplayName)
	return ref
}

// DisplayName returns the last path segment of a key or URL.
func DisplayName(keyOrURL string) string {
	s := strings.TrimSpace(keyOrURL)
	if u, err := url.Parse(s); err == nil && u.Scheme != "" {
		s = u.Path
	}
	s = strings.TrimRight(s, "/")
	if s == "" {
		return "archivo"
	}
	name := path.Base(s)
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	return name
}

// IsImage reports whether the file name has an image extension.
func IsImage(name string) bool {
	return slices.Contains(imageExtensions, strings.ToLower(path.Ext(name)))
}

// CandidatePrefixes lists the folders an order's files may live under, most
// specific first.
func CandidatePrefixes(prefix string, id kernel.OrderID) []string {
	folder := id.String()
	var out []string
	for _, c := range []string{prefix + folder + "/", prefix + folder, folder + "/", folder} {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}
