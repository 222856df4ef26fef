// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import (
	"crypto/hmac"
	"crypto/sha256"

	"github.com/luxfi/ids"
)

// SigKind selects one of the two signature kinds spec.md §4.1 supports.
type SigKind uint8

const (
	// DigestSHA256 signs with the SHA-256 digest of the signed portion.
	DigestSHA256 SigKind = 0
	// HMACSHA256 signs with HMAC-SHA-256 over the signed portion, keyed
	// by a caller-supplied key.
	HMACSHA256 SigKind = 1
)

// MetaInfo mirrors the original source's ndn_metainfo_t{content_type,
// freshness_period}. FreshnessPeriodMS < 0 means "omit" (the original's
// sentinel of -1).
type MetaInfo struct {
	ContentType      uint32
	FreshnessPeriodMS int64
}

func (m MetaInfo) encode() []byte {
	var value []byte
	value = append(value, EncodeBlock(TypeContentType, EncodeInteger(m.ContentType))...)
	if m.FreshnessPeriodMS >= 0 {
		value = append(value, EncodeBlock(TypeFreshnessPeriod, EncodeInteger(uint32(m.FreshnessPeriodMS)))...)
	}
	return EncodeBlock(TypeMetaInfo, value)
}

func signatureInfo(kind SigKind) []byte {
	var sigTypeCode uint32
	switch kind {
	case DigestSHA256:
		sigTypeCode = 0
	case HMACSHA256:
		sigTypeCode = 4
	}
	value := EncodeBlock(TypeSignatureType, EncodeInteger(sigTypeCode))
	return EncodeBlock(TypeSignatureInfo, value)
}

func sign(signedPortion []byte, kind SigKind, key []byte) ids.ID {
	switch kind {
	case HMACSHA256:
		mac := hmac.New(sha256.New, key)
		mac.Write(signedPortion)
		return ids.ID(mac.Sum(nil))
	default:
		return ids.ID(sha256.Sum256(signedPortion))
	}
}

// BuildData assembles a signed Data TLV from a pre-encoded Name, a
// MetaInfo, and a content payload. It returns the full wire bytes and the
// computed signature value (the caller has no other way to recover it
// short of re-parsing the SignatureValue sub-TLV).
func BuildData(name []byte, meta MetaInfo, content []byte, kind SigKind, key []byte) ([]byte, ids.ID, error) {
	if kind == HMACSHA256 && len(key) == 0 {
		return nil, ids.ID{}, ErrBadLength
	}

	metaBlock := meta.encode()
	contentBlock := EncodeBlock(TypeContent, content)
	sigInfoBlock := signatureInfo(kind)

	signedPortion := make([]byte, 0, len(name)+len(metaBlock)+len(contentBlock)+len(sigInfoBlock))
	signedPortion = append(signedPortion, name...)
	signedPortion = append(signedPortion, metaBlock...)
	signedPortion = append(signedPortion, contentBlock...)
	signedPortion = append(signedPortion, sigInfoBlock...)

	digest := sign(signedPortion, kind, key)
	sigValueBlock := EncodeBlock(TypeSignatureValue, digest[:])

	value := append(append([]byte{}, signedPortion...), sigValueBlock...)
	return EncodeBlock(TypeData, value), digest, nil
}

// ParseDataName extracts the Name block from an encoded Data TLV.
func ParseDataName(data []byte) ([]byte, error) {
	d, err := decodeTyped(data, TypeData)
	if err != nil {
		return nil, err
	}
	n, err := decodeBlock(d.value)
	if err != nil {
		return nil, err
	}
	if n.typ != TypeName {
		return nil, ErrUnexpectedType
	}
	return EncodeBlock(TypeName, n.value), nil
}

// ParseDataContent extracts the Content sub-TLV's raw payload from an
// encoded Data TLV (the Name and MetaInfo sub-TLVs are skipped).
func ParseDataContent(data []byte) ([]byte, error) {
	d, err := decodeTyped(data, TypeData)
	if err != nil {
		return nil, err
	}

	off := 0
	// Name
	n, err := decodeBlock(d.value[off:])
	if err != nil {
		return nil, err
	}
	if n.typ != TypeName {
		return nil, ErrUnexpectedType
	}
	off += n.consumed

	// MetaInfo
	mi, err := decodeBlock(d.value[off:])
	if err != nil {
		return nil, err
	}
	if mi.typ != TypeMetaInfo {
		return nil, ErrUnexpectedType
	}
	off += mi.consumed

	// Content
	c, err := decodeBlock(d.value[off:])
	if err != nil {
		return nil, err
	}
	if c.typ != TypeContent {
		return nil, ErrUnexpectedType
	}
	return c.value, nil
}
