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

package join

import (
	"github.com/matrixorigin/tabular/pkg/common/taberr"
	"github.com/matrixorigin/tabular/pkg/container/field"
	"github.com/matrixorigin/tabular/pkg/container/nulls"
	"github.com/matrixorigin/tabular/pkg/container/store"
	"github.com/matrixorigin/tabular/pkg/container/vector"
	"github.com/matrixorigin/tabular/pkg/sort"
	"github.com/matrixorigin/tabular/pkg/view"
)

// Inner computes the inner equality join of l and r by sort merge.
//
// Rows with a missing value in any key field never match. The output
// keeps every field of both inputs, left fields first. When a predicate
// pairs two fields of the same name the left copy is renamed name.0 and
// the right copy name.1; any other right field whose name is already
// taken gains a .1 suffix until it is unique. Output rows are ordered
// by key, and the pairs of one key keep the original left order first
// and the original right order second.
func Inner(l, r *view.View, preds ...Predicate) (*Result, error) {
	if len(preds) == 0 {
		return nil, taberr.NewInvalidInput("join needs at least one predicate")
	}
	lkeys := make([]vector.AnyVector, len(preds))
	rkeys := make([]vector.AnyVector, len(preds))
	for i, p := range preds {
		lvec, err := l.Column(p.Left)
		if err != nil {
			return nil, err
		}
		rvec, err := r.Column(p.Right)
		if err != nil {
			return nil, err
		}
		if lvec.Tag() != rvec.Tag() {
			return nil, taberr.NewTypeMismatch("join key %s is %s, %s is %s",
				p.Left, lvec.Tag(), p.Right, rvec.Tag())
		}
		lkeys[i], rkeys[i] = lvec, rvec
	}

	lsels := matchable(lkeys, l.Rows())
	rsels := matchable(rkeys, r.Rows())
	sort.OrderRows(lkeys, lsels)
	sort.OrderRows(rkeys, rsels)
	lout, rout := merge(lkeys, rkeys, lsels, rsels)

	return materialize(l, r, preds, lout, rout)
}

// matchable returns the rows that carry a value in every key column, in
// their original order.
func matchable(keys []vector.AnyVector, rows int) []int64 {
	sels := make([]int64, 0, rows)
	for i := 0; i < rows; i++ {
		miss := false
		for _, key := range keys {
			if nulls.Contains(key.Nulls(), uint64(i)) {
				miss = true
				break
			}
		}
		if !miss {
			sels = append(sels, int64(i))
		}
	}
	return sels
}

// merge walks the two key ordered row sets and collects the matching
// row pairs, left run major.
func merge(lkeys, rkeys []vector.AnyVector, lsels, rsels []int64) (lout, rout []int64) {
	lcmps := make([]func(a, b int64) int, len(lkeys))
	rcmps := make([]func(a, b int64) int, len(rkeys))
	xcmps := make([]func(a, b int64) int, len(lkeys))
	for i := range lkeys {
		lcmps[i] = sort.New(lkeys[i], false)
		rcmps[i] = sort.New(rkeys[i], false)
		xcmps[i] = sort.NewCross(lkeys[i], rkeys[i])
	}
	li, ri := 0, 0
	for li < len(lsels) && ri < len(rsels) {
		c := tupleCompare(xcmps, lsels[li], rsels[ri])
		if c < 0 {
			li++
			continue
		}
		if c > 0 {
			ri++
			continue
		}
		le := li + 1
		for le < len(lsels) && tupleCompare(lcmps, lsels[le], lsels[li]) == 0 {
			le++
		}
		re := ri + 1
		for re < len(rsels) && tupleCompare(rcmps, rsels[re], rsels[ri]) == 0 {
			re++
		}
		for x := li; x < le; x++ {
			for y := ri; y < re; y++ {
				lout = append(lout, lsels[x])
				rout = append(rout, rsels[y])
			}
		}
		li, ri = le, re
	}
	return lout, rout
}

func tupleCompare(cmps []func(a, b int64) int, a, b int64) int {
	for _, cmp := range cmps {
		if r := cmp(a, b); r != 0 {
			return r
		}
	}
	return 0
}

// materialize copies the matched rows of both inputs into a fresh store
// under the resolved output names.
func materialize(l, r *view.View, preds []Predicate, lout, rout []int64) (*Result, error) {
	shared := make(map[string]bool, len(preds))
	for _, p := range preds {
		if p.Left == p.Right {
			shared[p.Left] = true
		}
	}
	used := make(map[string]bool)
	var ids []field.Ident
	var vecs []vector.AnyVector
	add := func(v *view.View, name, cand string, sels []int64) error {
		for used[cand] {
			cand += ".1"
		}
		used[cand] = true
		id, err := v.Ident(name)
		if err != nil {
			return err
		}
		src, err := v.Column(name)
		if err != nil {
			return err
		}
		dst := src.NewEmpty()
		if err := dst.Union(src, sels); err != nil {
			return err
		}
		ids = append(ids, field.New(id.Table, cand, src.Tag()))
		vecs = append(vecs, dst)
		return nil
	}
	for _, name := range l.Names() {
		cand := name
		if shared[name] {
			cand = name + ".0"
		}
		if err := add(l, name, cand, lout); err != nil {
			return nil, err
		}
	}
	for _, name := range r.Names() {
		cand := name
		if shared[name] {
			cand = name + ".1"
		}
		if err := add(r, name, cand, rout); err != nil {
			return nil, err
		}
	}
	s, err := store.FromColumns(ids, vecs)
	if err != nil {
		return nil, err
	}
	v, err := view.ProjectAll(s)
	if err != nil {
		return nil, err
	}
	return &Result{Store: s, View: v}, nil
}
