// Package main provides the minitensor CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/minitensor/tensor"
)

const version = "v0.0.1-dev"

var flagPrecision = flag.Int("precision", -1,
	"Number of digits after the decimal point when printing data. -1 prints the shortest exact representation.")

var errUsage = errors.New("usage")

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()

	if err := run(os.Stdout, flag.Args(), *flagPrecision); err != nil {
		if errors.Is(err, errUsage) {
			usage()
		}
		klog.Errorf("%+v", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `minitensor %s

Usage:
  minitensor [flags] version
  minitensor [flags] neg <x>
  minitensor [flags] mul <x> <v1> [v2 ...]      scalar x sequence
  minitensor [flags] scale <v1> [v2 ...] -- <x> sequence x scalar
  minitensor [flags] info <v1> [v2 ...]

Flags:
`, version)
	flag.PrintDefaults()
}

// run executes one command and writes its result to w.
func run(w io.Writer, args []string, precision int) error {
	if len(args) == 0 {
		return errors.Wrap(errUsage, "missing command")
	}
	cmd, args := args[0], args[1:]
	klog.V(1).Infof("command %q with %d arguments", cmd, len(args))

	switch cmd {
	case "version":
		_, err := fmt.Fprintf(w, "minitensor %s\n", version)
		return err

	case "neg":
		if len(args) != 1 {
			return errors.Wrapf(errUsage, "neg takes exactly one scalar, got %d arguments", len(args))
		}
		s, err := parseScalar(args[0])
		if err != nil {
			return err
		}
		return printScalar(w, tensor.Neg(s), precision)

	case "mul":
		if len(args) < 1 {
			return errors.Wrap(errUsage, "mul needs a scalar followed by a sequence")
		}
		s, err := parseScalar(args[0])
		if err != nil {
			return err
		}
		v, err := parseSequence(args[1:])
		if err != nil {
			return err
		}
		return printSequence(w, tensor.MulScalarSequence(s, v), precision)

	case "scale":
		sep := slices.Index(args, "--")
		if sep < 0 || sep != len(args)-2 {
			return errors.Wrap(errUsage, "scale needs a sequence, then -- and a single scalar")
		}
		v, err := parseSequence(args[:sep])
		if err != nil {
			return err
		}
		s, err := parseScalar(args[sep+1])
		if err != nil {
			return err
		}
		return printSequence(w, tensor.MulSequenceScalar(v, s), precision)

	case "info":
		v, err := parseSequence(args)
		if err != nil {
			return err
		}
		shape := v.Shape()
		_, err = fmt.Fprintf(w, "rank=%d shape=%s elements=%s\n",
			v.Rank(), shape, humanize.Comma(int64(shape.NumElements())))
		return err

	default:
		return errors.Wrapf(errUsage, "unknown command %q", cmd)
	}
}

func parseScalar(arg string) (*tensor.Tensor[float64], error) {
	x, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid scalar %q", arg)
	}
	return tensor.Scalar(x).IntoTensor(), nil
}

func parseSequence(args []string) (*tensor.Tensor[[]float64], error) {
	data := make(tensor.Sequence[float64], 0, len(args))
	for i, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid element #%d %q", i, arg)
		}
		data = append(data, x)
	}
	klog.V(2).Infof("parsed sequence of %d elements", len(data))
	return data.IntoTensor(), nil
}

func printScalar(w io.Writer, s *tensor.Tensor[float64], precision int) error {
	_, err := fmt.Fprintf(w, "shape=%s data=%s\n", s.Shape(), formatFloat(s.Data(), precision))
	return err
}

func printSequence(w io.Writer, v *tensor.Tensor[[]float64], precision int) error {
	data := v.Data()
	parts := make([]string, len(data))
	for i, x := range data {
		parts[i] = formatFloat(x, precision)
	}
	_, err := fmt.Fprintf(w, "shape=%s data=%v\n", v.Shape(), parts)
	return err
}

func formatFloat(x float64, precision int) string {
	return strconv.FormatFloat(x, 'f', precision, 64)
}
