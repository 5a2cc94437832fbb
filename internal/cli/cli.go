// Package cli implements the intcast command line.
package cli

import (
	"io"
	"reflect"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"intcast/primitive"
)

// Globals are flags accepted before any command.
type Globals struct {
	LogLevel string `help:"Set the logging level (debug|info|warn|error)" default:"info"`
}

// CLI is the kong grammar of the intcast binary.
type CLI struct {
	Globals

	Check  CheckCmd  `cmd:"" help:"Convert a value between integer types, failing if it does not fit"`
	Bounds BoundsCmd `cmd:"" help:"Print the minimum and maximum of integer types"`
	Pairs  PairsCmd  `cmd:"" help:"List conversions that can never fail on this platform"`
	Gen    GenCmd    `cmd:"" help:"Generate per-target cast functions"`
}

// Env is bound into every command's Run method.
type Env struct {
	Stdout io.Writer
	Logger *zap.Logger
}

// NewParser returns a kong parser for cli with the intcast type mappers installed.
func NewParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	opts := []kong.Option{
		kong.Name("intcast"),
		kong.Description("Checked conversions between integer types"),
		kong.UsageOnError(),
		kong.TypeMapper(reflect.TypeOf(primitive.KindEnum(0)), kong.MapperFunc(kindDecoder)),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}

	return kong.New(cli, append(opts, options...)...)
}

// kindDecoder reads an integer type name such as "uint16" into a primitive.KindEnum.
func kindDecoder(ctx *kong.DecodeContext, target reflect.Value) error {
	var value string
	if err := ctx.Scan.PopValueInto("kind", &value); err != nil {
		return err
	}

	k, err := primitive.ParseKind(value)
	if err != nil {
		return err
	}
	target.Set(reflect.ValueOf(k))
	return nil
}
