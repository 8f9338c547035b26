package file

import (
	"github.com/qingw1230/coreio/utils"
)

// BufferedWriter 包装一个 RawFile，攒满缓冲区后才写入底层文件
type BufferedWriter struct {
	f   *RawFile
	buf []byte
	pos int // 已累积待刷出的字节数
}

// NewBufferedWriter 包装 f，size <= 0 时使用默认缓冲区大小
func NewBufferedWriter(f *RawFile, size int) *BufferedWriter {
	if size <= 0 {
		size = utils.DefaultBufferSize
	}
	return &BufferedWriter{
		f:   f,
		buf: make([]byte, size),
	}
}

// Write 将 p 拷贝进缓冲区，缓冲区写满时刷出后继续，返回接受的字节数
func (w *BufferedWriter) Write(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		if w.pos >= len(w.buf) {
			if err := w.Flush(); err != nil {
				return total, err
			}
		}

		n := copy(w.buf[w.pos:], p[total:])
		w.pos += n
		total += n
	}
	return total, nil
}

// Flush 将缓冲区内 [0, pos) 的数据全部写入底层文件
// 单次系统调用可能只接受一部分，这里循环到写完为止
func (w *BufferedWriter) Flush() error {
	written := 0
	for written < w.pos {
		n, err := w.f.Write(w.buf[written:w.pos])
		if err != nil {
			// 把未刷出的部分挪到缓冲区头部，留给下次重试
			copy(w.buf, w.buf[written:w.pos])
			w.pos -= written
			return err
		}
		written += n
	}
	w.pos = 0
	return nil
}

// Close 先刷出缓冲区再关闭底层 RawFile
// 即使刷出失败也会继续关闭描述符，避免泄漏，刷出错误优先返回
func (w *BufferedWriter) Close() error {
	flushErr := w.Flush()
	if err := w.f.Close(); err != nil {
		if flushErr != nil {
			return flushErr
		}
		return err
	}
	return flushErr
}
