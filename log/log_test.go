package log

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tubevault/tubevault/filesystem"
	"github.com/tubevault/tubevault/key"
	"github.com/tubevault/tubevault/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Nothing is enabled and field entries are safe to use", func() {
			So(Enabled(), ShouldBeFalse)
			Fields(map[string]any{"run": "x"}).Info("dropped")
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "not-a-level")
		So(Setup(), ShouldBeNil)

		Convey("Lines are appended to today's file", func() {
			Info("hello")
			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "hello")
		})

		Reset(func() {
			viper.Set(key.LogsWrite, false)
			_ = Setup()
		})
	})
}
