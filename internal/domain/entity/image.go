package entity

// ImageUpload is raw image content received with a catalog mutation.
// The content type is detected from Data; FileName is informational only.
type ImageUpload struct {
	FileName string
	Data     []byte
}

// IsEmpty reports whether no image content was supplied.
func (u *ImageUpload) IsEmpty() bool {
	return u == nil || len(u.Data) == 0
}

// ImageKind is the catalog aggregate an image belongs to. It prefixes image references.
type ImageKind string

const (
	ImageKindCategory ImageKind = "categories"
	ImageKindProduct  ImageKind = "products"
)
