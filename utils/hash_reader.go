package utils

import (
	"io"

	xxhash "github.com/cespare/xxhash/v2"
)

type HashReader struct {
	R         io.Reader
	H         *xxhash.Digest
	BytesRead int // 读取的字节数
}

func NewHashReader(r io.Reader) *HashReader {
	return &HashReader{
		R: r,
		H: xxhash.New(),
	}
}

// Read 将数据读入 p，并将其写到 xxhash.Digest
func (h *HashReader) Read(p []byte) (int, error) {
	n, err := h.R.Read(p)
	if err != nil {
		return n, err
	}
	h.BytesRead += n
	return h.H.Write(p[:n])
}

// ReadByte 准确读取一字节数据
func (h *HashReader) ReadByte() (byte, error) {
	b := make([]byte, 1)
	_, err := h.Read(b)
	return b[0], err
}

func (h *HashReader) Sum64() uint64 {
	return h.H.Sum64()
}
