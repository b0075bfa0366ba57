package ftracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

// ErrNilPackage is returned for a batch holding a nil package
var ErrNilPackage = errors.New("nil package")

type Reporter struct {
	concurrency int
}

func NewReporter(concurrency int) *Reporter {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Reporter{concurrency: concurrency}
}

type job struct {
	index int
	pkg   *Package
}

func (r *Reporter) report(index int, pkg *Package) (string, error) {
	if pkg == nil {
		return "", fmt.Errorf("package %d: %w", index, ErrNilPackage)
	}
	training, err := ReadPackage(pkg.Code, pkg.Data)
	if err != nil {
		return "", err
	}
	info := ShowTrainingInfo(training)
	reportsTotal.WithLabelValues(info.TrainingType).Inc()
	log.Debug().
		Str("code", pkg.Code).
		Str("type", info.TrainingType).
		Float64("distance", info.Distance).
		Float64("calories", info.Calories).
		Msg("report")
	return info.Message(), nil
}

// Reports returns the report line for each package in the order given
func (r *Reporter) Reports(c context.Context, pkgs []*Package) ([]string, error) {
	jobc := make(chan job, len(pkgs))
	res := make([]string, len(pkgs))

	grp, ctx := errgroup.WithContext(c)
	for i := 0; i < r.concurrency; i++ {
		grp.Go(func() error {
			for j := range jobc {
				if err := ctx.Err(); err != nil {
					return err
				}
				msg, err := r.report(j.index, j.pkg)
				if err != nil {
					return err
				}
				// each worker writes a distinct index
				res[j.index] = msg
			}
			return nil
		})
	}

	err := func() error {
		defer close(jobc)
		for i, pkg := range pkgs {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobc <- job{index: i, pkg: pkg}:
			}
		}
		return nil
	}()

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}
