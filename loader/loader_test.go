package loader

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/momwatch/dataset"
)

type mockedReader struct {
	mock.Mock
}

func (m *mockedReader) Read(name string) ([]byte, error) {
	args := m.Called(name)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

var maternalCSV = []byte(`Age,SystolicBP,DiastolicBP,BS,BodyTemp,HeartRate,RiskLevel
25,130,80,15,98,86,high risk
35,140,90,13,98,70,high risk
29,90,70,8,100,80,low risk
`)

func TestLoaderMemoizes(t *testing.T) {
	Convey("Given a loader over a mocked reader", t, func() {
		reader := &mockedReader{}
		reader.On("Read", dataset.Maternal.FileName()).Return(maternalCSV, nil)
		l := New(reader)

		Convey("When the same dataset is selected twice", func() {
			first, err := l.Load(dataset.Maternal)
			So(err, ShouldBeNil)
			second, err := l.Load(dataset.Maternal)
			So(err, ShouldBeNil)

			Convey("The file is read once and the same table is returned", func() {
				reader.AssertNumberOfCalls(t, "Read", 1)
				So(second, ShouldEqual, first)
				So(first.Len(), ShouldEqual, 3)
				So(l.Cached(dataset.Maternal), ShouldBeTrue)
			})

			Convey("The schema comes from the same read", func() {
				sch, err := l.Schema(dataset.Maternal)
				So(err, ShouldBeNil)
				So(sch.RowCount, ShouldEqual, 3)
				reader.AssertNumberOfCalls(t, "Read", 1)
			})
		})
	})
}

func TestLoaderFailures(t *testing.T) {
	Convey("Given a reader that cannot find the fetal dataset", t, func() {
		reader := &mockedReader{}
		reader.On("Read", dataset.Fetal.FileName()).Return(nil, os.ErrNotExist)
		l := New(reader)

		Convey("Load returns a LoadError naming the file", func() {
			table, err := l.Load(dataset.Fetal)
			So(table, ShouldBeNil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "fetal_health.csv")
			So(err.Error(), ShouldStartWith, "Error loading ")

			loadErr, ok := err.(*LoadError)
			So(ok, ShouldBeTrue)
			So(loadErr.File, ShouldEqual, "fetal_health.csv")
			So(errors.Cause(loadErr.Err), ShouldEqual, os.ErrNotExist)
		})

		Convey("Failures are not cached", func() {
			_, err := l.Load(dataset.Fetal)
			So(err, ShouldNotBeNil)
			_, err = l.Load(dataset.Fetal)
			So(err, ShouldNotBeNil)
			reader.AssertNumberOfCalls(t, "Read", 2)
			So(l.Cached(dataset.Fetal), ShouldBeFalse)
		})
	})

	Convey("Given a file that is not valid CSV", t, func() {
		reader := &mockedReader{}
		reader.On("Read", dataset.SmartBelt.FileName()).Return([]byte("a,b\n1,2,3\n"), nil)
		l := New(reader)

		Convey("Load returns a parse failure naming the file", func() {
			_, err := l.Load(dataset.SmartBelt)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "smart_pregnancy_belt_dataset_100.csv")
			So(err.Error(), ShouldContainSubstring, "parse failed")
		})
	})
}

func TestLoaderConcurrentFirstLoadReadsOnce(t *testing.T) {
	reader := &mockedReader{}
	reader.On("Read", dataset.Maternal.FileName()).Return(maternalCSV, nil)
	l := New(reader)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.Load(dataset.Maternal)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	reader.AssertNumberOfCalls(t, "Read", 1)
}

func TestFileReader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataset.Maternal.FileName()), maternalCSV, 0o644))

	l := NewFromDir(dir)
	table, err := l.Load(dataset.Maternal)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())

	_, err = l.Load(dataset.Fetal)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetal_health.csv")
}
