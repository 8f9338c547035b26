package file

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/qingw1230/coreio/utils"
	"golang.org/x/sys/unix"
)

// RawFile 持有一个文件描述符，所有读写都直接走系统调用
type RawFile struct {
	fd   int
	path string
}

// Open 使用 open 系统调用打开文件，mode 决定 flags，新建文件权限为 0644
func Open(path string, mode Mode) (*RawFile, error) {
	if len(path) == 0 {
		return nil, utils.ErrEmptyPath
	}
	// 路径会作为 C 字符串传给内核，中间不允许出现 NUL
	if strings.IndexByte(path, 0) >= 0 {
		return nil, utils.ErrInvalidPath
	}

	fd, err := unix.Open(path, mode.flags(), uint32(utils.DefaultFileMode))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open: %s", path)
	}
	return &RawFile{fd: fd, path: path}, nil
}

// Read 从描述符读取数据到 p，返回读取的字节数，0 表示读到文件末尾
func (r *RawFile) Read(p []byte) (int, error) {
	if r.fd == utils.InvalidFD {
		return 0, utils.ErrClosedFile
	}
	if len(p) == 0 {
		return 0, nil
	}

	n, err := unix.Read(r.fd, p)
	if err != nil {
		return 0, errors.Wrapf(err, "while reading %s", r.path)
	}
	return n, nil
}

// Write 将 p 写入描述符，单次调用可能只写入一部分，调用方需要自己循环
func (r *RawFile) Write(p []byte) (int, error) {
	if r.fd == utils.InvalidFD {
		return 0, utils.ErrClosedFile
	}
	if len(p) == 0 {
		return 0, nil
	}

	n, err := unix.Write(r.fd, p)
	if err != nil {
		return 0, errors.Wrapf(err, "while writing %s", r.path)
	}
	return n, nil
}

// Close 关闭描述符并写入哨兵值，重复关闭是安全的空操作
func (r *RawFile) Close() error {
	if r.fd == utils.InvalidFD {
		return nil
	}
	fd := r.fd
	r.fd = utils.InvalidFD
	if err := unix.Close(fd); err != nil {
		return errors.Wrapf(err, "while closing %s", r.path)
	}
	return nil
}

func (r *RawFile) Fd() int {
	return r.fd
}

func (r *RawFile) Name() string {
	return r.path
}
