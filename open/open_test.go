package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubevault/tubevault/constant"
)

func TestCommand(t *testing.T) {
	const url = "https://www.youtube.com/watch?v=abc&t=1"

	Convey("Given a watch URL", t, func() {
		Convey("Linux uses xdg-open", func() {
			cmd, err := command(constant.Linux, url, "")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", url})
		})

		Convey("Linux runs a chosen application directly", func() {
			cmd, err := command(constant.Linux, url, "mpv")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"mpv", url})
		})

		Convey("macOS opens with a chosen application", func() {
			cmd, err := command(constant.Darwin, url, "Safari")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"open", "-a", "Safari", url})
		})

		Convey("Windows escapes ampersands for start", func() {
			cmd, err := command(constant.Windows, url, "firefox")
			So(err, ShouldBeNil)
			So(cmd.Args[len(cmd.Args)-1], ShouldEqual, "https://www.youtube.com/watch?v=abc^&t=1")
		})

		Convey("Android always goes through termux", func() {
			cmd, err := command(constant.Android, url, "chrome")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"termux-open-url", url})
		})

		Convey("Unknown systems are unsupported", func() {
			_, err := command("plan9", url, "")
			So(err, ShouldNotBeNil)
		})
	})
}
