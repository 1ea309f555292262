//go:build tinygo

package main

import (
	"context"

	"taskdeck/app"
	"taskdeck/deck/feed"
	"taskdeck/hal"
)

// source feeds the board. Boards with a network stack assign their MQTT or
// serial source here from an init func; the default shows a fixed list.
var source feed.Source = feed.Static([]byte(demoTasks))

const demoTasks = `[
 {"taskId":"1","summary":"连接 Wi-Fi 后推送任务","dueTimestamp":"1700000000000"},
 {"taskId":"2","summary":"taskpub publish tasks.json"},
 {"taskId":"3","summary":"暂无网络"}
]`

func main() {
	h := hal.New(hal.Options{})
	d, err := app.New(h, app.Config{Source: source})
	if err != nil {
		h.Logger().WriteLineString("taskdeck: " + err.Error())
		return
	}
	if err := d.Run(context.Background()); err != nil {
		h.Logger().WriteLineString("taskdeck: " + err.Error())
	}
}
