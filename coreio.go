package coreio

import (
	"github.com/qingw1230/coreio/file"
	"github.com/qingw1230/coreio/utils"
)

// OpenReader 以只读模式打开 path，并包装成 BufferedReader
func OpenReader(path string, opt *Options) (*file.BufferedReader, error) {
	r, err := file.OpenBufferedReader(&file.Options{
		Path:       path,
		Mode:       file.ModeRead,
		BufferSize: opt.BufferSize,
	})
	if err != nil {
		return nil, utils.Err(err)
	}
	return r, nil
}

// OpenWriter 以写模式打开 path（不存在则创建，存在则清空），并包装成 BufferedWriter
func OpenWriter(path string, opt *Options) (*file.BufferedWriter, error) {
	w, err := file.OpenBufferedWriter(&file.Options{
		Path:       path,
		Mode:       file.ModeWrite,
		BufferSize: opt.BufferSize,
	})
	if err != nil {
		return nil, utils.Err(err)
	}
	return w, nil
}
