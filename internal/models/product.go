package models

import (
	"strings"
	"unicode/utf8"
)

// mimeTypes maps product filename suffixes to their declared MIME types.
// The table is applied after the filename has been normalized to uppercase.
var mimeTypes = map[string]string{
	".TXT": "text/plain",
	".GIF": "image/gif",
	".JPG": "image/jpeg",
	".PNG": "image/png",
}

// Product is one extracted, named unit of content delivered to the consumer.
// Products are created during archive expansion and are immutable afterwards.
type Product struct {
	// Filename is the archive member name, normalized to uppercase.
	Filename string
	// Contents is the raw binary content of the product.
	Contents []byte
}

// MIMEType returns the expected MIME type of this product based on its
// filename suffix, or the empty string if the suffix is not recognized.
func (p *Product) MIMEType() string {
	idx := strings.LastIndex(p.Filename, ".")
	if idx < 0 {
		return ""
	}
	return mimeTypes[p.Filename[idx:]]
}

// StringContents returns the contents as a string, replacing invalid UTF-8
// sequences rather than failing. Text products are expected to be valid
// UTF-8; anything else is converted lossily.
func (p *Product) StringContents() string {
	if utf8.Valid(p.Contents) {
		return string(p.Contents)
	}
	return strings.ToValidUTF8(string(p.Contents), "�")
}
