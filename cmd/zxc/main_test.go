package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zxclab/zxc/format"
)

func TestParseCLI_Defaults(t *testing.T) {
	parsed, err := parseCLI(nil)
	require.NoError(t, err)

	cfg := parsed.cfg
	require.False(t, cfg.decompress)
	require.False(t, cfg.bench)
	require.Equal(t, format.DefaultLevel, cfg.level)
	require.Equal(t, 0, cfg.threads)
	require.Equal(t, format.CodecZstd, cfg.codec)
	require.False(t, cfg.checksum)
	require.Empty(t, parsed.files)
}

func TestParseCLI_ChecksumOptIn(t *testing.T) {
	parsed, err := parseCLI([]string{"-C"})
	require.NoError(t, err)
	require.True(t, parsed.cfg.checksum)
}

func TestParseCLI_LevelShorthands(t *testing.T) {
	for lv := format.MinLevel; lv <= format.MaxLevel; lv++ {
		parsed, err := parseCLI([]string{"-" + string(rune('0'+lv))})
		require.NoError(t, err)
		require.Equal(t, lv, parsed.cfg.level)
	}
}

func TestParseCLI_CompressOverridesDecompress(t *testing.T) {
	parsed, err := parseCLI([]string{"-d", "-z"})
	require.NoError(t, err)
	require.False(t, parsed.cfg.decompress)

	parsed, err = parseCLI([]string{"-d"})
	require.NoError(t, err)
	require.True(t, parsed.cfg.decompress)
}

func TestParseCLI_BenchAndBlockSize(t *testing.T) {
	parsed, err := parseCLI([]string{"-b", "--block-size", "4096", "sample.bin"})
	require.NoError(t, err)
	require.True(t, parsed.cfg.bench)
	require.Equal(t, uint32(4096), parsed.cfg.blockSize)
	require.Equal(t, []string{"sample.bin"}, parsed.files)
}

func TestParseCLI_UnknownCodec(t *testing.T) {
	_, err := parseCLI([]string{"--codec", "brotli"})
	require.Error(t, err)
}

func TestBenchBuffer(t *testing.T) {
	data := make([]byte, 256*1024)
	for i := range data {
		data[i] = byte(i % 13)
	}

	cfg := &cliConfig{level: format.DefaultLevel, codec: format.CodecZstd, checksum: true}
	stats, err := benchBuffer(cfg, data)
	require.NoError(t, err)
	require.Equal(t, len(data), stats.originalSize)
	require.Positive(t, stats.compressedSize)
	require.Less(t, stats.compressedSize, stats.originalSize)
	require.Positive(t, stats.ratio())
}

func TestOutputPath(t *testing.T) {
	compress := &cliConfig{}
	decompress := &cliConfig{decompress: true}

	out, err := outputPath(compress, "data.bin")
	require.NoError(t, err)
	require.Equal(t, "data.bin.xc", out)

	_, err = outputPath(compress, "data.bin.xc")
	require.Error(t, err)

	out, err = outputPath(decompress, "data.bin.xc")
	require.NoError(t, err)
	require.Equal(t, "data.bin", out)

	_, err = outputPath(decompress, "data.bin")
	require.Error(t, err)
}

func TestParseCodec(t *testing.T) {
	tests := []struct {
		name string
		want format.CodecType
	}{
		{"zstd", format.CodecZstd},
		{"ZSTD", format.CodecZstd},
		{"s2", format.CodecS2},
		{"lz4", format.CodecLZ4},
		{"none", format.CodecNone},
	}
	for _, tt := range tests {
		got, err := parseCodec(tt.name)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	_, err := parseCodec("brotli")
	require.Error(t, err)
}
