package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 生成实体主键（频道/模板）
func GenID() int64 {
	return node.Generate().Int64()
}
