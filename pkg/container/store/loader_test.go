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

package store_test

import (
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/tabular/pkg/common/taberr"
	"github.com/matrixorigin/tabular/pkg/container/field"
	"github.com/matrixorigin/tabular/pkg/container/store"
	mock_store "github.com/matrixorigin/tabular/pkg/container/store/test"
	"github.com/matrixorigin/tabular/pkg/container/types"
)

func TestPopulate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	idK := field.New("src", "k", types.T_int64)
	idS := field.New("src", "s", types.T_text)

	l := mock_store.NewMockLoader(ctrl)
	l.EXPECT().Fields().Return([]field.Ident{idK, idS})
	gomock.InOrder(
		l.EXPECT().Next().Return(store.Row{
			idK: types.NewInt64(1),
			idS: types.NewText("x"),
		}, nil),
		l.EXPECT().Next().Return(store.Row{
			idK: types.NewInt64(2),
		}, nil),
		l.EXPECT().Next().Return(nil, io.EOF),
	)

	s, err := store.Populate(l)
	require.NoError(t, err)
	require.Equal(t, 2, s.Rows())

	vec, err := s.Column(idS)
	require.NoError(t, err)
	val, err := vec.GetValue(0)
	require.NoError(t, err)
	assert.Equal(t, types.NewText("x"), val)
	val, err = vec.GetValue(1)
	require.NoError(t, err)
	assert.True(t, val.IsNull())
}

func TestPopulateLoaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	idK := field.New("src", "k", types.T_int64)
	l := mock_store.NewMockLoader(ctrl)
	l.EXPECT().Fields().Return([]field.Ident{idK})
	l.EXPECT().Next().Return(nil, taberr.NewInternalError("connection lost"))

	_, err := store.Populate(l)
	require.Error(t, err)
	assert.True(t, taberr.IsTabErrCode(err, taberr.ErrInternal))
}

func TestPopulateDuplicateFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	idK := field.New("src", "k", types.T_int64)
	l := mock_store.NewMockLoader(ctrl)
	l.EXPECT().Fields().Return([]field.Ident{idK, idK})

	_, err := store.Populate(l)
	require.Error(t, err)
	assert.True(t, taberr.IsTabErrCode(err, taberr.ErrDuplicateField))
}

func TestPopulateBadRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	idK := field.New("src", "k", types.T_int64)
	l := mock_store.NewMockLoader(ctrl)
	l.EXPECT().Fields().Return([]field.Ident{idK})
	l.EXPECT().Next().Return(store.Row{
		field.New("src", "ghost", types.T_int64): types.NewInt64(9),
	}, nil)

	_, err := store.Populate(l)
	require.Error(t, err)
	assert.True(t, taberr.IsTabErrCode(err, taberr.ErrUnknownField))
}
