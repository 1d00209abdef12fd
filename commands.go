package main

import (
	"fmt"
	"strings"

	"deedles.dev/vec2/geom"
	"deedles.dev/vec2/internal/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type Point = geom.Point[float64]

// App holds the state shared by all of the commands of vec2.
type App struct {
	Log *logrus.Logger

	level string
}

func (app *App) Command() *cobra.Command {
	root := cobra.Command{
		Use:          "vec2",
		Short:        "Evaluate 2D vector operations",
		Long:         "Evaluate 2D vector operations.\n\nPoints are written as x,y. Arguments that start with a minus sign must\nfollow --, as in: vec2 add -- -1,2 3,4",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(app.level)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			app.Log.SetLevel(level)
			app.Log.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&app.level, "log-level", "warning", "minimum level of log messages")

	root.AddCommand(
		app.points("add", "Add two vectors", 2, func(p []Point) any { return geom.Add(p[0], p[1]) }),
		app.points("sub", "Subtract the second vector from the first", 2, func(p []Point) any { return geom.Sub(p[0], p[1]) }),
		app.points("neg", "Reverse a vector", 1, func(p []Point) any { return geom.Neg(p[0]) }),
		app.points("eq", "Compare two vectors with tolerance", 2, func(p []Point) any { return geom.Eq(p[0], p[1]) }),
		app.points("ne", "Inverse of eq", 2, func(p []Point) any { return geom.Ne(p[0], p[1]) }),
		app.points("perp", "Rotate a vector by 90 degrees", 1, func(p []Point) any { return geom.Perp(p[0]) }),
		app.points("dot", "Dot product of two vectors", 2, func(p []Point) any { return geom.Dot(p[0], p[1]) }),
		app.points("cross", "Cross product of two vectors", 2, func(p []Point) any { return geom.Cross(p[0], p[1]) }),
		app.points("len", "Length of a vector", 1, func(p []Point) any { return geom.Len(p[0]) }),
		app.points("len2", "Squared length of a vector", 1, func(p []Point) any { return geom.Len2(p[0]) }),
		app.points("dist", "Distance between two points", 2, func(p []Point) any { return geom.Dist(p[0], p[1]) }),
		app.points("norm", "Vector of unit length in the same direction", 1, func(p []Point) any { return geom.Normalize(p[0]) }),
		app.scalar("scale", "Multiply a vector by a scalar", func(p Point, k float64) Point { return geom.Scale(p, k) }),
		app.scalar("div", "Divide a vector by a scalar", func(p Point, k float64) Point { return geom.Div(p, k) }),
		app.axis("project", "Project a vector onto an axis", geom.Project[Point], geom.ProjectUnit[Point]),
		app.axis("reflect", "Reflect a vector on an axis", geom.Reflect[Point], geom.ReflectUnit[Point]),
		app.rotate(),
	)

	return &root
}

func (app *App) points(name, short string, n int, op func([]Point) any) *cobra.Command {
	return &cobra.Command{
		Use:   name + strings.Repeat(" x,y", n),
		Short: short,
		Args:  cobra.ExactArgs(n),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.trace(cmd, args)

			p := make([]Point, 0, len(args))
			for _, arg := range args {
				v, err := util.ParsePoint(arg)
				if err != nil {
					return err
				}
				p = append(p, v)
			}

			app.print(cmd, op(p))
			return nil
		},
	}
}

func (app *App) scalar(name, short string, op func(Point, float64) Point) *cobra.Command {
	return &cobra.Command{
		Use:   name + " x,y k",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.trace(cmd, args)

			p, err := util.ParsePoint(args[0])
			if err != nil {
				return err
			}
			k, err := util.ParseScalar(args[1])
			if err != nil {
				return err
			}

			app.print(cmd, op(p, k))
			return nil
		},
	}
}

func (app *App) axis(name, short string, op, unit func(v, axis Point) Point) *cobra.Command {
	cmd := cobra.Command{
		Use:   name + " x,y axis",
		Short: short,
		Args:  cobra.ExactArgs(2),
	}
	isUnit := cmd.Flags().Bool("unit", false, "assume that the axis is of unit length")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		app.trace(cmd, args)

		v, err := util.ParsePoint(args[0])
		if err != nil {
			return err
		}
		axis, err := util.ParsePoint(args[1])
		if err != nil {
			return err
		}

		if *isUnit {
			app.print(cmd, unit(v, axis))
			return nil
		}
		app.print(cmd, op(v, axis))
		return nil
	}

	return &cmd
}

func (app *App) rotate() *cobra.Command {
	cmd := cobra.Command{
		Use:   "rotate x,y",
		Short: "Rotate a vector around an origin, clockwise with Y pointing down",
		Args:  cobra.ExactArgs(1),
	}
	origin := util.PointFlag(cmd.Flags(), "origin", Point{}, "point to rotate around")
	deg := cmd.Flags().Float64("deg", 0, "angle in degrees")
	rad := cmd.Flags().Float64("rad", 0, "angle in radians")
	cmd.MarkFlagsMutuallyExclusive("deg", "rad")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		app.trace(cmd, args)

		v, err := util.ParsePoint(args[0])
		if err != nil {
			return err
		}

		var angle geom.Angle = geom.Deg(*deg)
		if cmd.Flags().Changed("rad") {
			angle = geom.Rad(*rad)
		}

		app.print(cmd, geom.Rotate(v, *origin, angle))
		return nil
	}

	return &cmd
}

func (app *App) trace(cmd *cobra.Command, args []string) {
	app.Log.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"args":    args,
	}).Debug("evaluate")
}

func (app *App) print(cmd *cobra.Command, result any) {
	out := cmd.OutOrStdout()
	switch result := result.(type) {
	case Point:
		if result.IsNaN() {
			app.Log.WithField("command", cmd.Name()).Warn("degenerate input, result is NaN")
		}
		fmt.Fprintln(out, util.FormatPoint(result))
	case float64:
		fmt.Fprintln(out, util.FormatScalar(result))
	default:
		fmt.Fprintln(out, result)
	}
}
