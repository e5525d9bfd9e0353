// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/matrixorigin/tabular/pkg/apply"
	"github.com/matrixorigin/tabular/pkg/config"
	"github.com/matrixorigin/tabular/pkg/container/field"
	"github.com/matrixorigin/tabular/pkg/container/store"
	"github.com/matrixorigin/tabular/pkg/container/types"
	"github.com/matrixorigin/tabular/pkg/join"
	"github.com/matrixorigin/tabular/pkg/logutil"
	"github.com/matrixorigin/tabular/pkg/ops"
	"github.com/matrixorigin/tabular/pkg/sort"
	"github.com/matrixorigin/tabular/pkg/view"
)

func runBench(cfg *config.Config, seed int64) error {
	params := cfg.Bench
	logutil.Info("bench start",
		zap.Int64("rows", params.Rows),
		zap.Int64("fields", params.Fields),
		zap.Int64("rounds", params.Rounds),
		zap.Int64("seed", seed))

	start := time.Now()
	for round := int64(0); round < params.Rounds; round++ {
		if err := runRound(params, seed+round, round); err != nil {
			return err
		}
	}
	logutil.Info("bench done", zap.Duration("elapsed", time.Since(start)))
	return nil
}

func runRound(params config.BenchParameters, seed, round int64) error {
	rng := rand.New(rand.NewSource(seed))

	var left, right *view.View
	err := phase("populate", round, func() (int, error) {
		ls, err := store.Populate(newRandLoader("bench_left", params, rng))
		if err != nil {
			return 0, err
		}
		rs, err := store.Populate(newRandLoader("bench_right", params, rng))
		if err != nil {
			return 0, err
		}
		if left, err = view.ProjectAll(ls); err != nil {
			return 0, err
		}
		if right, err = view.ProjectAll(rs); err != nil {
			return 0, err
		}
		return left.Rows() + right.Rows(), nil
	})
	if err != nil {
		return err
	}

	err = phase("sort", round, func() (int, error) {
		out, err := sort.Sort(left, sort.By("k"), sort.ByDesc("f1"))
		if err != nil {
			return 0, err
		}
		return out.Rows(), nil
	})
	if err != nil {
		return err
	}

	var joined *join.Result
	err = phase("join", round, func() (int, error) {
		res, err := join.Inner(left, right, join.On("k", "k"))
		if err != nil {
			return 0, err
		}
		joined = res
		return res.View.Rows(), nil
	})
	if err != nil {
		return err
	}

	err = phase("filter", round, func() (int, error) {
		out, err := apply.Filter(left, "f1", func(val types.Value) bool {
			return val.Int64() > 0
		})
		if err != nil {
			return 0, err
		}
		return out.Rows(), nil
	})
	if err != nil {
		return err
	}

	err = phase("unique", round, func() (int, error) {
		out, err := apply.Unique(left, "k")
		if err != nil {
			return 0, err
		}
		return out.Rows(), nil
	})
	if err != nil {
		return err
	}

	err = phase("describe", round, func() (int, error) {
		sum, err := apply.Describe(joined.View)
		if err != nil {
			return 0, err
		}
		return len(sum.Fields), nil
	})
	if err != nil {
		return err
	}

	return phase("ops", round, func() (int, error) {
		added, err := ops.FieldOp(left, "f1", ops.Add, "f1")
		if err != nil {
			return 0, err
		}
		scaled, err := ops.ScalarOp(left, "f1", ops.Mul, types.NewInt64(3))
		if err != nil {
			return 0, err
		}
		return added.Rows() + scaled.Rows(), nil
	})
}

// phase runs fn once and logs how long it took next to whatever size
// fn reports, row or field counts depending on the phase.
func phase(name string, round int64, fn func() (int, error)) error {
	start := time.Now()
	size, err := fn()
	if err != nil {
		return err
	}
	logutil.Info("phase done",
		zap.String("phase", name),
		zap.Int64("round", round),
		zap.Int("size", size),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// randLoader feeds store.Populate with generated rows. Field k is a
// uint64 join key drawn from [0, rows), the rest cycle through the
// other tags. One row in sixteen drops a value to load as missing.
type randLoader struct {
	ids  []field.Ident
	rows int64
	next int64
	rng  *rand.Rand
}

func newRandLoader(table string, params config.BenchParameters, rng *rand.Rand) *randLoader {
	ids := make([]field.Ident, params.Fields)
	ids[0] = field.New(table, "k", types.T_uint64)
	tags := []types.T{types.T_int64, types.T_float64, types.T_bool, types.T_text, types.T_uint64}
	for i := 1; i < len(ids); i++ {
		ids[i] = field.New(table, fmt.Sprintf("f%d", i), tags[(i-1)%len(tags)])
	}
	return &randLoader{ids: ids, rows: params.Rows, rng: rng}
}

func (l *randLoader) Fields() []field.Ident {
	return l.ids
}

func (l *randLoader) Next() (store.Row, error) {
	if l.next >= l.rows {
		return nil, io.EOF
	}
	l.next++
	row := make(store.Row, len(l.ids))
	for i, id := range l.ids {
		if i > 0 && l.rng.Intn(16) == 0 {
			continue
		}
		row[id] = randValue(l.rng, id.Typ, l.rows)
	}
	return row, nil
}

func randValue(rng *rand.Rand, tag types.T, span int64) types.Value {
	switch tag {
	case types.T_uint64:
		return types.NewUint64(uint64(rng.Int63n(span)))
	case types.T_int64:
		return types.NewInt64(rng.Int63n(span) - span/2)
	case types.T_float64:
		return types.NewFloat64(rng.NormFloat64() * 100)
	case types.T_bool:
		return types.NewBool(rng.Intn(2) == 0)
	case types.T_text:
		return types.NewText(fmt.Sprintf("w%06d", rng.Int63n(span)))
	}
	panic(fmt.Sprintf("unexpect type %s for function randValue", tag))
}
