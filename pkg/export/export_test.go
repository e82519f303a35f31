package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ExportTestSuite struct {
	suite.Suite
}

func TestExportTestSuite(t *testing.T) {
	suite.Run(t, new(ExportTestSuite))
}

func (suite *ExportTestSuite) TestReadExport() {
	in := "Index," + TimeColumn + "," + GlucoseColumn + "\n" +
		"1,2024-03-01T08:05:00,113\n" +
		"2,2024-03-01T08:10:00,Low\n"

	tbl, err := read(strings.NewReader(in))
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"Index", TimeColumn, GlucoseColumn}, tbl.Header)
	assert.Equal(suite.T(), [][]string{
		{"1", "2024-03-01T08:05:00", "113"},
		{"2", "2024-03-01T08:10:00", "Low"},
	}, tbl.Rows)
}

func (suite *ExportTestSuite) TestHeaderOnlyIsEmpty() {
	tbl, err := read(strings.NewReader(TimeColumn + "," + GlucoseColumn + "\n"))
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), tbl.Empty())
}

func (suite *ExportTestSuite) TestBOMStripped() {
	tbl, err := read(strings.NewReader("\ufeff" + TimeColumn + "," + GlucoseColumn + "\n"))
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, tbl.ColumnIndex(TimeColumn))
}

func (suite *ExportTestSuite) TestEmptyInputFails() {
	_, err := read(strings.NewReader(""))
	assert.Error(suite.T(), err)
}

func (suite *ExportTestSuite) TestRaggedRowFails() {
	_, err := read(strings.NewReader("a,b\n1,2,3\n"))
	assert.Error(suite.T(), err)
}

func (suite *ExportTestSuite) TestMissingFileFails() {
	_, err := ReadFile("does-not-exist.csv")
	assert.Error(suite.T(), err)
}

func (suite *ExportTestSuite) TestColumnIndexAbsent() {
	tbl := &Table{Header: []string{"a", "b"}}
	assert.Equal(suite.T(), -1, tbl.ColumnIndex("c"))
}
