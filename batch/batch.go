package batch

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"valley-modarith/arithmetic"
	"valley-modarith/config"
)

var (
	logger = logrus.WithFields(logrus.Fields{
		"app":       "valley_modarith",
		"component": "batch",
	})
)

// Input 素数 p と判定対象の整数列
type Input struct {
	Modulus uint64   `json:"p"`
	Values  []uint64 `json:"ints"`
}

// Report Evaluate の結果。Entries は Input.Values と同じ順番
type Report struct {
	ID       string                     `json:"id"`
	Modulus  uint64                     `json:"p"`
	Entries  []arithmetic.ResidueReport `json:"entries"`
	Residues int                        `json:"residues"`
	// FirstResidueLargerRoot 最初に見つかった平方剰余の大きい方の根。剰余が無ければ nil
	FirstResidueLargerRoot *uint64 `json:"first_residue_larger_root,omitempty"`
}

// Evaluate Input.Values の各値について平方剰余判定と平方根探索を並列に行う。
// 各 goroutine は自分のインデックスにしか書き込まないのでロックは不要。
func Evaluate(ctx context.Context, cfg *config.Config, in Input) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if in.Modulus > cfg.Residue.MaxSearchModulus {
		return nil, errors.Wrapf(arithmetic.ErrPrecondition,
			"modulus %d exceeds residue.max_search_modulus %d", in.Modulus, cfg.Residue.MaxSearchModulus)
	}
	if in.Modulus == 2 || !arithmetic.IsPrime(in.Modulus) {
		return nil, errors.Wrapf(arithmetic.ErrPrecondition, "modulus must be an odd prime: %d", in.Modulus)
	}

	// 空の入力では goroutine が起動せずキャンセルを検知できない
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{
		ID:      uuid.New().String(),
		Modulus: in.Modulus,
		Entries: make([]arithmetic.ResidueReport, len(in.Values)),
	}

	logger := logger.WithFields(logrus.Fields{
		"id": report.ID,
		"p":  in.Modulus,
	})
	logger.Debugf("evaluating %d values", len(in.Values))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Batch.Concurrency)

	for i, x := range in.Values {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := arithmetic.SquareRoots(x, in.Modulus)
			if err != nil {
				return errors.Wrapf(err, "value[%d]=%d", i, x)
			}
			report.Entries[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.WithError(err).Warnf("evaluation aborted")
		return nil, err
	}

	for _, e := range report.Entries {
		if !e.IsResidue {
			continue
		}
		report.Residues++
		if report.FirstResidueLargerRoot == nil {
			larger := max(e.Roots[0], e.Roots[1])
			report.FirstResidueLargerRoot = &larger
		}
	}

	logger.Infof("%d of %d values are quadratic residues", report.Residues, len(in.Values))
	return report, nil
}
