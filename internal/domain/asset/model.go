package asset

// Asset is the stored metadata for one uploaded image; the bytes themselves
// live in the same row but only travel on the blob endpoint.
type Asset struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	MimeType  string `json:"mimeType"`
	Width     int64  `json:"width"`
	Height    int64  `json:"height"`
	CreatedAt int64  `json:"createdAt"`
}

// Blob is the downloadable form of an asset.
type Blob struct {
	Name     string
	MimeType string
	Data     []byte
}

// Upload carries one multipart upload: the raw file plus the metadata form
// fields as the client sent them (dimensions still unparsed strings).
type Upload struct {
	ID       string
	Name     string
	MimeType string
	Width    string
	Height   string

	Filename string // from the file part, fallback for Name
	FileMime string // from the file part, fallback for MimeType
	Data     []byte
}
