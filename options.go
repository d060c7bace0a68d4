package md2html

const defaultReadBufferSize = 4096

// ConvertOption configures a conversion.
type ConvertOption func(*convertConfig)

type convertConfig struct {
	readBufferSize   int
	stripFrontMatter bool
}

// WithReadBufferSize sets the size of the input buffer. Values below 16 are
// raised to 16 by bufio.
func WithReadBufferSize(n int) ConvertOption {
	return func(cfg *convertConfig) {
		cfg.readBufferSize = n
	}
}

// WithStripFrontMatter drops a YAML, TOML or JSON front matter block at the
// very start of the input before it is converted.
func WithStripFrontMatter(enabled bool) ConvertOption {
	return func(cfg *convertConfig) {
		cfg.stripFrontMatter = enabled
	}
}

func resolveConfig(opts []ConvertOption) convertConfig {
	cfg := configPool.Get().(*convertConfig)
	*cfg = convertConfig{readBufferSize: defaultReadBufferSize}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	cfgVal := *cfg
	configPool.Put(cfg)
	return cfgVal
}
