package file

import (
	"bytes"
	"unicode/utf8"

	"github.com/qingw1230/coreio/utils"
)

// BufferedReader 包装一个 RawFile，用定长缓冲区把小块读取合并成批量系统调用
type BufferedReader struct {
	f   *RawFile
	buf []byte
	pos int // 缓冲区内下一个未读字节
	cap int // 缓冲区内有效数据长度
}

// NewBufferedReader 包装 f，size <= 0 时使用默认缓冲区大小
func NewBufferedReader(f *RawFile, size int) *BufferedReader {
	if size <= 0 {
		size = utils.DefaultBufferSize
	}
	return &BufferedReader{
		f:   f,
		buf: make([]byte, size),
	}
}

// fill 缓冲区耗尽时从底层文件重新装满，返回新装入的字节数，0 表示文件末尾
func (r *BufferedReader) fill() (int, error) {
	r.pos = 0
	n, err := r.f.Read(r.buf)
	if err != nil {
		r.cap = 0
		return 0, err
	}
	r.cap = n
	return n, nil
}

// Read 将数据读入 p，返回读取的字节数，读到文件末尾时可能小于 len(p)
func (r *BufferedReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	total := 0
	for total < len(p) {
		if r.pos >= r.cap {
			n, err := r.fill()
			if err != nil {
				return total, err
			}
			if n == 0 {
				return total, nil
			}
		}

		n := copy(p[total:], r.buf[r.pos:r.cap])
		r.pos += n
		total += n
	}
	return total, nil
}

// ReadLine 读取一行写入 dst，包含结尾的换行符，返回消费的字节数
// 一行可以跨越任意多次缓冲区装填，到文件末尾时返回已累积的未终止行
func (r *BufferedReader) ReadLine(dst *bytes.Buffer) (int, error) {
	dst.Reset()

	total := 0
	for {
		if r.pos >= r.cap {
			n, err := r.fill()
			if err != nil {
				return total, err
			}
			if n == 0 {
				return total, r.validate(dst)
			}
		}

		// 在有效区间内找换行符，找不到就把整段都收进累加器
		end := r.cap
		if i := bytes.IndexByte(r.buf[r.pos:r.cap], '\n'); i >= 0 {
			end = r.pos + i + 1
		}
		dst.Write(r.buf[r.pos:end])
		total += end - r.pos
		r.pos = end

		if end < r.cap || r.buf[end-1] == '\n' {
			return total, r.validate(dst)
		}
	}
}

// validate 校验累积的行是合法 UTF-8，非法时清空累加器并返回 ErrInvalidData
func (r *BufferedReader) validate(dst *bytes.Buffer) error {
	if !utf8.Valid(dst.Bytes()) {
		dst.Reset()
		return utils.ErrInvalidData
	}
	return nil
}

// Close 关闭底层 RawFile
func (r *BufferedReader) Close() error {
	return r.f.Close()
}
