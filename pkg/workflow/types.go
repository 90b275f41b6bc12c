package workflow

import (
	"github.com/shouni/go-ehon-kit/pkg/config"

	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/remoteio"
)

// ManagerArgs は、Manager の初期化に必要な依存関係をまとめた構造体です。
type ManagerArgs struct {
	Config     config.Config
	HTTPClient httpkit.ClientInterface
	Reader     remoteio.InputReader
	Writer     remoteio.OutputWriter

	// PromptTemplate は、リモート生成に使うプロンプトテンプレートの上書きです。
	// 空の場合は組み込みの絵本テンプレートが使われます。
	PromptTemplate string
}
