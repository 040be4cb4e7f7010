package domain

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	apperrors "tokenhub/internal/platform/errors"
)

// NDEF type name format values, per the NFC Forum data exchange format.
const (
	TNFWellKnown byte = 0x01
	TNFMIMEMedia byte = 0x02
)

const (
	headerMB byte = 0x80
	headerME byte = 0x40
	headerCF byte = 0x20
	headerSR byte = 0x10
	headerIL byte = 0x08
)

var (
	rtdText      = []byte("T")
	mimeJSONType = []byte("application/json")
)

// Record is one decodable unit within a tag message.
type Record struct {
	TNF     byte
	Type    []byte
	Payload []byte
}

// DecodePayload extracts the token text carried by a record. It understands
// the well-known text record layout (status byte with a UTF-16 flag in bit 7
// and the language-code length in the low 6 bits) and MIME records typed
// application/json. It is a pure function of the record's bytes; anything it
// cannot decode reports ok=false so the caller can try the next record.
func DecodePayload(record Record) (string, bool) {
	switch {
	case record.TNF == TNFWellKnown && bytes.Equal(record.Type, rtdText):
		return decodeTextPayload(record.Payload)
	case record.TNF == TNFMIMEMedia && bytes.Equal(record.Type, mimeJSONType):
		if !utf8.Valid(record.Payload) {
			return "", false
		}
		return string(record.Payload), true
	default:
		return "", false
	}
}

func decodeTextPayload(payload []byte) (string, bool) {
	if len(payload) == 0 {
		return "", false
	}
	status := payload[0]
	langLen := int(status & 0x3F)
	if 1+langLen > len(payload) {
		return "", false
	}
	text := payload[1+langLen:]
	if status&0x80 == 0 {
		if !utf8.Valid(text) {
			return "", false
		}
		return string(text), true
	}
	decoded, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder().Bytes(text)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

// NewTextRecord builds a well-known UTF-8 text record with the given
// language code.
func NewTextRecord(lang, text string) Record {
	payload := make([]byte, 0, 1+len(lang)+len(text))
	payload = append(payload, byte(len(lang)&0x3F))
	payload = append(payload, lang...)
	payload = append(payload, text...)
	return Record{TNF: TNFWellKnown, Type: append([]byte(nil), rtdText...), Payload: payload}
}

// NewJSONRecord builds a MIME record carrying raw JSON text.
func NewJSONRecord(jsonText string) Record {
	return Record{TNF: TNFMIMEMedia, Type: append([]byte(nil), mimeJSONType...), Payload: []byte(jsonText)}
}

// ParseMessage decodes a binary NDEF message into its records. Chunked
// records are not supported.
func ParseMessage(data []byte) ([]Record, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty tag message", apperrors.ErrInvalidInput)
	}
	var records []Record
	offset := 0
	for offset < len(data) {
		header := data[offset]
		offset++
		if header&headerCF != 0 {
			return nil, fmt.Errorf("%w: chunked records are not supported", apperrors.ErrInvalidInput)
		}
		if len(records) == 0 && header&headerMB == 0 {
			return nil, fmt.Errorf("%w: missing message begin flag", apperrors.ErrInvalidInput)
		}

		if offset >= len(data) {
			return nil, fmt.Errorf("%w: truncated record header", apperrors.ErrInvalidInput)
		}
		typeLen := int(data[offset])
		offset++

		var payloadLen int
		if header&headerSR != 0 {
			if offset >= len(data) {
				return nil, fmt.Errorf("%w: truncated payload length", apperrors.ErrInvalidInput)
			}
			payloadLen = int(data[offset])
			offset++
		} else {
			if offset+4 > len(data) {
				return nil, fmt.Errorf("%w: truncated payload length", apperrors.ErrInvalidInput)
			}
			payloadLen = int(binary.BigEndian.Uint32(data[offset : offset+4]))
			offset += 4
		}

		idLen := 0
		if header&headerIL != 0 {
			if offset >= len(data) {
				return nil, fmt.Errorf("%w: truncated id length", apperrors.ErrInvalidInput)
			}
			idLen = int(data[offset])
			offset++
		}

		if offset+typeLen+idLen+payloadLen > len(data) {
			return nil, fmt.Errorf("%w: truncated record body", apperrors.ErrInvalidInput)
		}
		recType := append([]byte(nil), data[offset:offset+typeLen]...)
		offset += typeLen + idLen
		payload := append([]byte(nil), data[offset:offset+payloadLen]...)
		offset += payloadLen

		records = append(records, Record{TNF: header & 0x07, Type: recType, Payload: payload})

		if header&headerME != 0 {
			if offset != len(data) {
				return nil, fmt.Errorf("%w: trailing bytes after message end", apperrors.ErrInvalidInput)
			}
			return records, nil
		}
	}
	return nil, fmt.Errorf("%w: missing message end flag", apperrors.ErrInvalidInput)
}

// EncodeMessage renders records as a binary NDEF message. Short-record form
// is used whenever the payload fits a single length byte.
func EncodeMessage(records []Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records to encode", apperrors.ErrInvalidInput)
	}
	var buf bytes.Buffer
	for i, record := range records {
		if len(record.Type) > 0xFF {
			return nil, fmt.Errorf("%w: record type too long", apperrors.ErrInvalidInput)
		}
		header := record.TNF & 0x07
		if i == 0 {
			header |= headerMB
		}
		if i == len(records)-1 {
			header |= headerME
		}
		short := len(record.Payload) <= 0xFF
		if short {
			header |= headerSR
		}
		buf.WriteByte(header)
		buf.WriteByte(byte(len(record.Type)))
		if short {
			buf.WriteByte(byte(len(record.Payload)))
		} else {
			var lenBytes [4]byte
			binary.BigEndian.PutUint32(lenBytes[:], uint32(len(record.Payload)))
			buf.Write(lenBytes[:])
		}
		buf.Write(record.Type)
		buf.Write(record.Payload)
	}
	return buf.Bytes(), nil
}
