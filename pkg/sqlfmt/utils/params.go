package utils

// ParamsConfig is the caller-supplied parameter table: either a
// positional list or a key->value mapping, never both meaningfully at
// once (a mapping takes priority for keyed placeholders).
type ParamsConfig struct {
	MapParams  map[string]string
	ListParams []string
}

// Params walks a ParamsConfig, tracking the positional cursor across a
// single format() call.
type Params struct {
	cfg   *ParamsConfig
	index int
}

// NewParams creates a param walker. A nil cfg means "no params
// configured", in which case Get always returns the pass-through value.
func NewParams(cfg *ParamsConfig) *Params {
	if cfg == nil {
		cfg = &ParamsConfig{}
	}
	return &Params{cfg: cfg}
}

func (p *Params) empty() bool {
	return len(p.cfg.MapParams) == 0 && len(p.cfg.ListParams) == 0
}

// Get returns the substituted value for a placeholder token. If key is
// non-empty it is looked up in MapParams; a missing key is reported via
// the ok=false return so the caller can raise MissingParameter. An empty
// key consumes the next entry from ListParams positionally.
func (p *Params) Get(key string, original string) (value string, ok bool, usedParams bool) {
	if p.empty() {
		return original, true, false
	}

	if key != "" {
		v, exists := p.cfg.MapParams[key]
		return v, exists, true
	}

	if p.index >= len(p.cfg.ListParams) {
		return "", false, true
	}
	v := p.cfg.ListParams[p.index]
	p.index++
	return v, true, true
}
