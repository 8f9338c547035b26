package file

import "golang.org/x/sys/unix"

type Options struct {
	Path       string
	Mode       Mode
	BufferSize int
}

// Mode 表示文件打开模式
type Mode int

const (
	// ModeRead 只读打开已有文件
	ModeRead Mode = iota
	// ModeWrite 只写打开，不存在则创建，存在则清空
	ModeWrite
	// ModeReadWrite 读写打开，不存在则创建，不清空
	ModeReadWrite
)

// flags 将 Mode 转换为 open 系统调用的 flags
func (m Mode) flags() int {
	switch m {
	case ModeWrite:
		return unix.O_WRONLY | unix.O_CREAT | unix.O_TRUNC
	case ModeReadWrite:
		return unix.O_RDWR | unix.O_CREAT
	default:
		return unix.O_RDONLY
	}
}

type CoreFile interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

var _ CoreFile = (*RawFile)(nil)

// OpenBufferedReader 按 opt 打开文件并包装成 BufferedReader
func OpenBufferedReader(opt *Options) (*BufferedReader, error) {
	f, err := Open(opt.Path, opt.Mode)
	if err != nil {
		return nil, err
	}
	return NewBufferedReader(f, opt.BufferSize), nil
}

// OpenBufferedWriter 按 opt 打开文件并包装成 BufferedWriter
func OpenBufferedWriter(opt *Options) (*BufferedWriter, error) {
	f, err := Open(opt.Path, opt.Mode)
	if err != nil {
		return nil, err
	}
	return NewBufferedWriter(f, opt.BufferSize), nil
}
