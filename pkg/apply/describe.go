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

package apply

import (
	"bytes"
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/matrixorigin/tabular/pkg/common/taberr"
	"github.com/matrixorigin/tabular/pkg/container/nulls"
	"github.com/matrixorigin/tabular/pkg/container/types"
	"github.com/matrixorigin/tabular/pkg/view"
)

// FieldSummary describes one field of a view. Mean and Stdev only carry
// a value when Numeric is set.
type FieldSummary struct {
	Name    string
	Tag     types.T
	Rows    int
	Missing int
	Min     types.Value
	Max     types.Value
	Sum     types.Value
	Mean    float64
	Stdev   float64
	Numeric bool
}

// Summary describes every field of a view.
type Summary struct {
	Fields []FieldSummary
}

// views at least this wide are summarized on a worker pool
var describeParallelThreshold = 8

// Describe summarizes every field of v.
func Describe(v *view.View) (*Summary, error) {
	names := v.Names()
	fields := make([]FieldSummary, len(names))
	if len(names) < describeParallelThreshold {
		for i, name := range names {
			fs, err := describeField(v, name)
			if err != nil {
				return nil, err
			}
			fields[i] = fs
		}
		return &Summary{Fields: fields}, nil
	}

	pool, err := ants.NewPool(runtime.NumCPU())
	if err != nil {
		return nil, taberr.NewInternalError("describe pool: %v", err)
	}
	defer pool.Release()
	var wg sync.WaitGroup
	errs := make([]error, len(names))
	for i, name := range names {
		i, name := i, name
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			fields[i], errs[i] = describeField(v, name)
		}); err != nil {
			wg.Done()
			errs[i] = err
		}
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &Summary{Fields: fields}, nil
}

func describeField(v *view.View, name string) (FieldSummary, error) {
	vec, err := v.Column(name)
	if err != nil {
		return FieldSummary{}, err
	}
	fs := FieldSummary{
		Name:    name,
		Tag:     vec.Tag(),
		Rows:    vec.Length(),
		Missing: nulls.Count(vec.Nulls()),
	}
	if fs.Min, err = Min(v, name); err != nil {
		return FieldSummary{}, err
	}
	if fs.Max, err = Max(v, name); err != nil {
		return FieldSummary{}, err
	}
	if vec.Tag() == types.T_text {
		return fs, nil
	}
	fs.Numeric = true
	if fs.Sum, err = Sum(v, name); err != nil {
		return FieldSummary{}, err
	}
	if fs.Mean, err = Mean(v, name); err != nil {
		return FieldSummary{}, err
	}
	if fs.Stdev, err = Stdev(v, name); err != nil {
		return FieldSummary{}, err
	}
	return fs, nil
}

func (s *Summary) String() string {
	var buf bytes.Buffer
	for _, f := range s.Fields {
		fmt.Fprintf(&buf, "%s %s rows=%d missing=%d min=%s max=%s",
			f.Name, f.Tag, f.Rows, f.Missing, f.Min, f.Max)
		if f.Numeric {
			fmt.Fprintf(&buf, " sum=%s mean=%g stdev=%g", f.Sum, f.Mean, f.Stdev)
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
