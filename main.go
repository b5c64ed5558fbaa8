package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"

	"github.com/feel-easy/uno-agent/consts"
	"github.com/feel-easy/uno-agent/network"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	server := network.NewWebsocketServer(addr(), seed(), delay())
	log.Error(server.Serve())
}

func addr() string {
	if v := os.Getenv("UNO_ADDR"); v != "" {
		return v
	}
	return ":9998"
}

// seed defaults to the wall clock; set UNO_SEED for reproducible games.
func seed() int64 {
	if v := os.Getenv("UNO_SEED"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
		log.Infof("invalid UNO_SEED %s, falling back to clock\n", v)
	}
	return time.Now().UnixNano()
}

// delay is the automated seat's thinking time, UNO_AI_DELAY in milliseconds.
func delay() time.Duration {
	if v := os.Getenv("UNO_AI_DELAY"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			return time.Duration(parsed) * time.Millisecond
		}
		log.Infof("invalid UNO_AI_DELAY %s, using default\n", v)
	}
	return consts.DefaultPlayDelay
}
