package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"glucograph/defs"
	"glucograph/pkg/export"
)

type GraphTestSuite struct {
	suite.Suite
}

func TestGraphTestSuite(t *testing.T) {
	suite.Run(t, new(GraphTestSuite))
}

func (suite *GraphTestSuite) TestRunEndToEnd() {
	dir := suite.T().TempDir()
	in := filepath.Join(dir, "export.csv")
	out := filepath.Join(dir, "plot.png")

	csv := "Index," + export.TimeColumn + "," + export.GlucoseColumn + "\n" +
		"1,2024-03-01T06:05:00,95\n" +
		"2,2024-03-01T06:10:00,Low\n" +
		"3,2024-03-01T12:00:00,160\n" +
		"4,2024-03-01T12:05:00,-5\n" +
		"5,bad timestamp,120\n" +
		"6,2024-03-01T18:00:00,not a number\n" +
		"7,2024-03-01T18:30:00,140\n"
	assert.NoError(suite.T(), os.WriteFile(in, []byte(csv), 0o644))

	err := New(testConfig(out)).Run(in)
	assert.NoError(suite.T(), err)

	b, err := os.ReadFile(out)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []byte("\x89PNG\r\n\x1a\n"), b[:8])
}

func (suite *GraphTestSuite) TestRunMissingFile() {
	err := New(testConfig("plot.png")).Run("does-not-exist.csv")
	assert.Error(suite.T(), err)
}

func (suite *GraphTestSuite) TestRunNoUsableReadings() {
	dir := suite.T().TempDir()
	in := filepath.Join(dir, "export.csv")

	csv := export.TimeColumn + "," + export.GlucoseColumn + "\n" +
		"bad,worse\n"
	assert.NoError(suite.T(), os.WriteFile(in, []byte(csv), 0o644))

	err := New(testConfig(filepath.Join(dir, "plot.png"))).Run(in)
	assert.Error(suite.T(), err)
}

func (suite *GraphTestSuite) TestRunMissingColumns() {
	dir := suite.T().TempDir()
	in := filepath.Join(dir, "export.csv")

	assert.NoError(suite.T(), os.WriteFile(in, []byte("a,b\n1,2\n"), 0o644))

	err := New(testConfig(filepath.Join(dir, "plot.png"))).Run(in)
	assert.Error(suite.T(), err)
}

func testConfig(out string) defs.Config {
	config := defs.DefaultConfig()
	config.Chart.OutputFile = out
	config.Logger = zap.NewNop()
	return config
}
