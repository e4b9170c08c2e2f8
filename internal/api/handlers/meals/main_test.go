package meals

import (
	"os"
	"testing"

	"babybites/internal/pkg/common"
)

func TestMain(m *testing.M) {
	if err := common.InitLogger("error"); err != nil {
		panic(err)
	}
	code := m.Run()
	common.Sync()
	os.RemoveAll("logs")
	os.Exit(code)
}
