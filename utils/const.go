package utils

import "os"

// file
const (
	// InvalidFD 哨兵值，标记文件描述符已关闭
	InvalidFD = -1
	// DefaultBufferSize 读写缓冲区默认大小
	DefaultBufferSize = 4096
	// DefaultFileMode 新建文件的默认权限
	DefaultFileMode os.FileMode = 0644
)
