package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// DomainDataset separates dataset digests from other SHA-256 uses.
// The version suffix allows the encoding to change later.
const DomainDataset = "genesearch/dataset/v1"

// Digest returns a hex SHA-256 over the canonical encoding of the records
// in load order. Two stores with the same records in the same order share
// a digest; reordering changes it.
func (s *Store) Digest() (string, error) {
	data, err := marshalCanonicalRecords(s.Records())
	if err != nil {
		return "", fmt.Errorf("Digest: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainDataset, data), nil
}

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// marshalCanonicalRecords writes records as a JSON array of objects with
// keys in sorted order (formula, name, organism).
func marshalCanonicalRecords(records []Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, rec := range records {
		if i > 0 {
			buf.WriteByte(',')
		}
		fields := []struct{ key, val string }{
			{"formula", rec.Formula},
			{"name", rec.Name},
			{"organism", rec.Organism},
		}
		buf.WriteByte('{')
		for j, f := range fields {
			if j > 0 {
				buf.WriteByte(',')
			}
			k, err := marshalCanonicalString(f.key)
			if err != nil {
				return nil, err
			}
			v, err := marshalCanonicalString(f.val)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			buf.Write(v)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// marshalCanonicalString encodes s as a JSON string after NFC
// normalization. HTML characters and U+2028/U+2029 are left unescaped.
func marshalCanonicalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(norm.NFC.String(s)); err != nil {
		return nil, err
	}

	out := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})
	out = bytes.ReplaceAll(out, []byte(`\u2028`), []byte("\u2028"))
	out = bytes.ReplaceAll(out, []byte(`\u2029`), []byte("\u2029"))
	return out, nil
}
