package main

// @title stocksentry APIs
// @version 1.0
// @description Webhook receiver that aggregates streamed transcript segments, detects stock intent and summarizes news sentiment.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:9089
// @BasePath /
// @schemes http
import (
	_ "stocksentry/docs"
	protocol "stocksentry/protocal"

	_ "github.com/arsmn/fiber-swagger/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Println(err)
	}
}
