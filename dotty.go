package avltree

import (
	"fmt"
	"io"
)

type nodeids struct {
	idTable map[*Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node *Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Missing children of inner nodes are drawn as
// small empty circles.
func Tree2Dot(tree *Tree, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	nodelist, edgelist := "", ""
	sentinel := 0
	var walk func(node *Node)
	walk = func(node *Node) {
		ID := ids.alloc(node)
		l, r := node.rankDiffs()
		label := fmt.Sprintf("%d\\nh=%d s=%d", node.key, node.height, node.size)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(balanced(l, r), node.isLeaf()))
		if node.isLeaf() {
			return
		}
		for _, child := range []*Node{node.left, node.right} {
			if child == nil {
				sentinel++
				nilid := sentinel + 100000
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			walk(child)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(child))
		}
	}
	if !tree.Empty() {
		walk(tree.root)
	}
	if err := tree.Check(); err != nil {
		T().Errorf("tree DOT: %s", err.Error())
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(balanced bool, isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	if balanced {
		s += ",fillcolor=\"#a3d7e4\""
	} else {
		s += ",fillcolor=\"#FF9944\""
	}
	return s
}
