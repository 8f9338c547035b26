package coreio

import "github.com/qingw1230/coreio/utils"

type Options struct {
	BufferSize int
}

func NewDefaultOptions() *Options {
	opt := &Options{
		BufferSize: utils.DefaultBufferSize,
	}
	return opt
}
