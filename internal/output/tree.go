package output

import (
	"path"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "
)

// treeNode is one entry of a rendered file tree.
type treeNode struct {
	name     string
	isDir    bool
	children []*treeNode
}

// RenderFileTree renders slash-separated relative file paths as a tree rooted
// at rootName. Directories sort before files, then alphabetically.
func RenderFileTree(rootName string, files []string) string {
	if len(files) == 0 {
		return ""
	}

	root := &treeNode{name: rootName, isDir: true}
	for _, f := range files {
		insert(root, strings.Split(path.Clean(f), "/"))
	}
	sortTree(root)

	var sb strings.Builder
	sb.WriteString(GetStyles().Bold.Render(root.name + "/"))
	sb.WriteString("\n")
	for i, child := range root.children {
		renderNode(&sb, child, "", i == len(root.children)-1)
	}
	return sb.String()
}

func insert(node *treeNode, parts []string) {
	for i, part := range parts {
		var child *treeNode
		for _, c := range node.children {
			if c.name == part {
				child = c
				break
			}
		}
		if child == nil {
			child = &treeNode{name: part, isDir: i < len(parts)-1}
			node.children = append(node.children, child)
		}
		node = child
	}
}

func sortTree(node *treeNode) {
	sort.Slice(node.children, func(i, j int) bool {
		if node.children[i].isDir != node.children[j].isDir {
			return node.children[i].isDir
		}
		return node.children[i].name < node.children[j].name
	})
	for _, child := range node.children {
		sortTree(child)
	}
}

func renderNode(sb *strings.Builder, node *treeNode, prefix string, isLast bool) {
	connector := treeEdge
	childPrefix := prefix + treeVert
	if isLast {
		connector = treeLast
		childPrefix = prefix + treeSpace
	}

	name := node.name
	if node.isDir {
		name += "/"
	}
	sb.WriteString(GetStyles().Muted.Render(prefix+connector) + name)
	sb.WriteString("\n")

	for i, child := range node.children {
		renderNode(sb, child, childPrefix, i == len(node.children)-1)
	}
}
