package idutil

import (
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
)

// Generate returns a time ordered id. All ids of a process come from node 1.
func Generate() string {
	nodeOnce.Do(func() {
		var err error
		node, err = snowflake.NewNode(1)
		if err != nil {
			panic(err)
		}
	})

	return node.Generate().String()
}

// TimeOf returns the generation time encoded in an id produced by Generate.
func TimeOf(id string) (time.Time, error) {
	sID, err := snowflake.ParseString(id)
	if err != nil {
		return time.Time{}, err
	}

	return time.UnixMilli(sID.Time()), nil
}
