package cli

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"intcast/cast"
	"intcast/internal/gen"
	"intcast/option"
	"intcast/primitive"
)

// CheckCmd converts one value and fails with cast.ErrUnrepresentable when it does not fit.
type CheckCmd struct {
	From  primitive.KindEnum `required:"" help:"Type the value is read as"`
	To    primitive.KindEnum `required:"" help:"Type to convert to"`
	Value string             `arg:"" help:"Integer literal; 0x, 0o and 0b prefixes are accepted. Put negative values after --"`
}

func (c *CheckCmd) Run(env *Env) error {
	v, err := cast.ParseValue(c.Value, c.From)
	if err != nil {
		return err
	}

	env.Logger.Debug("check",
		zap.Stringer("from", c.From),
		zap.Stringer("to", c.To),
		zap.Stringer("value", v))

	res := v.As(c.To)
	fmt.Fprintln(env.Stdout, option.Map(res, cast.Value.String).UnwrapOr("none"))

	if res.IsNone() {
		return &cast.UnrepresentableError{Value: v.Wide, From: c.From, To: c.To}
	}

	return nil
}

// BoundsCmd prints one "name\tmin\tmax" line per kind.
type BoundsCmd struct {
	Kinds []string `arg:"" optional:"" help:"Type names to print; all integer types when omitted"`
}

func (c *BoundsCmd) Run(env *Env) error {
	kinds := primitive.Kinds()
	if len(c.Kinds) > 0 {
		kinds = nil
		for _, name := range c.Kinds {
			k, err := primitive.ParseKind(name)
			if err != nil {
				return err
			}
			kinds = append(kinds, k)
		}
	}

	for _, k := range kinds {
		min, max := k.Bounds()
		fmt.Fprintf(env.Stdout, "%s\t%s\t%s\n", k.TypeName(), min.String(), max.String())
	}

	return nil
}

// PairsCmd lists conversions that can never fail on this platform.
type PairsCmd struct {
	From string `help:"Only list conversions from this type"`
}

func (c *PairsCmd) Run(env *Env) error {
	var from primitive.KindEnum
	if c.From != "" {
		var err error
		if from, err = primitive.ParseKind(c.From); err != nil {
			return err
		}
	}

	for _, pair := range primitive.WideningPairs() {
		if from != 0 && pair.From != from {
			continue
		}
		fmt.Fprintln(env.Stdout, pair)
	}

	return nil
}

// GenCmd renders the per-target cast functions into Output.
type GenCmd struct {
	Config string `type:"existingfile" help:"YAML generator config"`
	Output string `default:"." type:"path" help:"Directory to write generated files into"`
}

func (c *GenCmd) Run(env *Env) error {
	cfg := gen.DefaultConfig()
	if c.Config != "" {
		loaded, err := gen.LoadConfig(c.Config)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	file, err := gen.NewGenerator(cfg).Generate()
	if err != nil {
		if p, derr := gen.WriteDebugUnformatted(err, c.Output); derr == nil && p != "" {
			env.Logger.Warn("wrote unformatted output", zap.String("path", p))
		}
		return fmt.Errorf("generating %s: %w", cfg.Output, err)
	}

	if err := gen.WriteFiles([]gen.GeneratedFile{*file}, c.Output); err != nil {
		return err
	}

	env.Logger.Info("generated",
		zap.String("path", filepath.Join(c.Output, file.Filename)),
		zap.Int("targets", len(cfg.Targets)))

	return nil
}
