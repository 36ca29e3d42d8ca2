package graphapi

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

var pngSignature = []byte{137, 80, 78, 71, 13, 10, 26, 10}

// GetPngMetadata returns the keyword/text pairs of every tEXt chunk in a PNG.
// ComfyUI writes the workflow and prompt JSON there.
func GetPngMetadata(r io.Reader) (map[string]string, error) {
	header := make([]byte, len(pngSignature))
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}
	if !bytes.Equal(header, pngSignature) {
		return nil, errors.New("not a valid PNG file")
	}

	txtChunks := make(map[string]string)
	for {
		var length uint32
		err := binary.Read(r, binary.BigEndian, &length)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		chunkType := make([]byte, 4)
		if _, err := io.ReadFull(r, chunkType); err != nil {
			return nil, err
		}

		switch string(chunkType) {
		case "tEXt":
			chunkData := make([]byte, length)
			if _, err := io.ReadFull(r, chunkData); err != nil {
				return nil, err
			}
			keyword, text, found := bytes.Cut(chunkData, []byte{0})
			if !found {
				return nil, errors.New("malformed tEXt chunk")
			}
			txtChunks[string(keyword)] = string(text)
		case "IEND":
			return txtChunks, nil
		default:
			if _, err := io.CopyN(io.Discard, r, int64(length)); err != nil {
				return nil, err
			}
		}

		// CRC
		if _, err := io.CopyN(io.Discard, r, 4); err != nil {
			return nil, err
		}
	}

	return txtChunks, nil
}
