package file

import (
	"os"
	"testing"

	"github.com/qingw1230/coreio/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workDir = "../work_test"

// clearDir 清空工作目录
func clearDir() {
	_, err := os.Stat(workDir)
	if err == nil {
		os.RemoveAll(workDir)
	}
	os.Mkdir(workDir, os.ModePerm)
}

func TestOpenWriteRead(t *testing.T) {
	clearDir()
	content := []byte("hello, coreio")

	w, err := Open(workDir+"/raw.txt", ModeWrite)
	require.NoError(t, err)
	n, err := w.Write(content)
	require.NoError(t, err)
	assert.Equal(t, len(content), n)
	require.NoError(t, w.Close())

	r, err := Open(workDir+"/raw.txt", ModeRead)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()
	buf := make([]byte, 128)
	n, err = r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, content, buf[:n])
}

func TestOpenWriteTruncates(t *testing.T) {
	clearDir()
	require.NoError(t, os.WriteFile(workDir+"/trunc.txt", []byte("old content"), 0644))

	w, err := Open(workDir+"/trunc.txt", ModeWrite)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(workDir + "/trunc.txt")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestOpenReadWriteKeepsContent(t *testing.T) {
	clearDir()
	require.NoError(t, os.WriteFile(workDir+"/keep.txt", []byte("keep me"), 0644))

	f, err := Open(workDir+"/keep.txt", ModeReadWrite)
	require.NoError(t, err)
	buf := make([]byte, 128)
	n, err := f.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(buf[:n]))
	require.NoError(t, f.Close())
}

func TestOpenReadWriteCreates(t *testing.T) {
	clearDir()
	f, err := Open(workDir+"/created.txt", ModeReadWrite)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = os.Stat(workDir + "/created.txt")
	assert.NoError(t, err)
}

func TestOpenNonexistent(t *testing.T) {
	clearDir()
	_, err := Open(workDir+"/noexist.txt", ModeRead)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenEmptyPath(t *testing.T) {
	for _, mode := range []Mode{ModeRead, ModeWrite, ModeReadWrite} {
		_, err := Open("", mode)
		assert.ErrorIs(t, err, utils.ErrEmptyPath)
	}
}

func TestOpenPathWithNul(t *testing.T) {
	_, err := Open("bad\x00path", ModeRead)
	assert.ErrorIs(t, err, utils.ErrInvalidPath)
}

func TestReadEmptyBuffer(t *testing.T) {
	clearDir()
	require.NoError(t, os.WriteFile(workDir+"/some.txt", []byte("some content"), 0644))

	f, err := Open(workDir+"/some.txt", ModeRead)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	n, err := f.Read(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestReadClosed(t *testing.T) {
	clearDir()
	require.NoError(t, os.WriteFile(workDir+"/closed.txt", []byte("x"), 0644))

	f, err := Open(workDir+"/closed.txt", ModeRead)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	buf := make([]byte, 8)
	_, err = f.Read(buf)
	assert.ErrorIs(t, err, utils.ErrClosedFile)
	_, err = f.Write([]byte("x"))
	assert.ErrorIs(t, err, utils.ErrClosedFile)
}

func TestDoubleClose(t *testing.T) {
	clearDir()
	f, err := Open(workDir+"/double.txt", ModeWrite)
	require.NoError(t, err)
	assert.NotEqual(t, utils.InvalidFD, f.Fd())

	require.NoError(t, f.Close())
	assert.Equal(t, utils.InvalidFD, f.Fd())
	// 重复关闭是安全的空操作
	require.NoError(t, f.Close())
}
