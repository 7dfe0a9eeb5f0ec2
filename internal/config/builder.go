package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return BuilderFor(NewConfig())
}

// BuilderFor returns a builder that edits cfg in place, e.g. to lay
// command line values over a loaded file.
func BuilderFor(cfg *Config) *ConfigBuilder {
	return &ConfigBuilder{cfg: cfg}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Play.FEN = fen
	return b
}

// WithWhite sets the White strategy name.
func (b *ConfigBuilder) WithWhite(name string) *ConfigBuilder {
	b.cfg.Play.White = name
	return b
}

// WithBlack sets the Black strategy name.
func (b *ConfigBuilder) WithBlack(name string) *ConfigBuilder {
	b.cfg.Play.Black = name
	return b
}

// WithSeed sets the random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Play.Seed = seed
	return b
}

// WithMaxPlies sets the ply cap.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Play.MaxPlies = n
	return b
}

// WithGames sets the number of games.
func (b *ConfigBuilder) WithGames(games int) *ConfigBuilder {
	b.cfg.Arena.Games = games
	return b
}

// WithWorkers sets the number of games played in parallel.
func (b *ConfigBuilder) WithWorkers(workers int) *ConfigBuilder {
	b.cfg.Arena.Workers = workers
	return b
}

// WithDuplicates sets the duplicate mode, "moves" or "position".
func (b *ConfigBuilder) WithDuplicates(mode string) *ConfigBuilder {
	b.cfg.Arena.Duplicates = mode
	return b
}

// WithPerftDepth enables a perft count to the given depth.
func (b *ConfigBuilder) WithPerftDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithDivide prints perft counts per root move.
func (b *ConfigBuilder) WithDivide(divide bool) *ConfigBuilder {
	b.cfg.Perft.Divide = divide
	return b
}

// WithFormat sets the output format.
func (b *ConfigBuilder) WithFormat(format string) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithNotation sets the PGN move notation.
func (b *ConfigBuilder) WithNotation(notation string) *ConfigBuilder {
	b.cfg.Output.Notation = notation
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length int) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithSevenTagRoster limits PGN headers to the seven tag roster.
func (b *ConfigBuilder) WithSevenTagRoster(only bool) *ConfigBuilder {
	b.cfg.Output.SevenTagRoster = only
	return b
}

// WithNoColor disables coloured boards.
func (b *ConfigBuilder) WithNoColor(noColor bool) *ConfigBuilder {
	b.cfg.Output.NoColor = noColor
	return b
}

// WithFlip draws boards from Black's side.
func (b *ConfigBuilder) WithFlip(flip bool) *ConfigBuilder {
	b.cfg.Output.Flip = flip
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
