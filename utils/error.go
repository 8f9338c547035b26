package utils

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
)

var (
	// ErrEmptyPath 打开文件的路径为空
	ErrEmptyPath = errors.New("invalid path, empty not allowed")
	// ErrInvalidPath 路径含 NUL 字节，无法传递给系统调用
	ErrInvalidPath = errors.New("invalid path")
	// ErrClosedFile 在已关闭的文件上执行读写
	ErrClosedFile = errors.New("file is closed")
	// ErrInvalidData 行数据不是合法的 UTF-8 文本
	ErrInvalidData = errors.New("invalid UTF-8 data")
)

// Panic err != nil 时触发 panic
func Panic(err error) {
	if err != nil {
		panic(err)
	}
}

func Err(err error) error {
	if err != nil {
		fmt.Printf("%s %s\n", location(2), err)
	}
	return err
}

// location 获取调用栈信息，deep 表示调用栈深度
func location(deep int) string {
	_, file, line, ok := runtime.Caller(deep)
	if !ok {
		file = "???"
		line = 0
	}
	file = filepath.Base(file)
	return file + ":" + strconv.Itoa(line)
}
