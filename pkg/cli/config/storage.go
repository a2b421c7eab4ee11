package config

import (
	"log/slog"

	"github.com/gitoon/gitoon/pkg/domain/interfaces"
	"github.com/gitoon/gitoon/pkg/repository/localfs"
	"github.com/urfave/cli/v3"
)

type Storage struct {
	dir string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "strips-dir",
			Usage:       "Directory where strip images and scripts are stored",
			Category:    "Storage",
			Value:       "comic-strips",
			Destination: &x.dir,
			Sources:     cli.EnvVars("GITOON_STRIPS_DIR"),
		},
	}
}

func (x *Storage) NewRepository() (interfaces.StripRepository, error) {
	return localfs.New(x.dir)
}

func (x Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dir", x.dir),
	)
}
