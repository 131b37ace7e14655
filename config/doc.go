// Package config provides flat, path addressed access to the settings of
// a type-tagged document.
//
// # Settings
//
// A node with a type attribute is a setting. Nodes without one group
// settings and contribute their name to the dotted path of the settings
// below them:
//
//	<nodeconf version="1.1">
//	  <editor>
//	    <tabSize type="int" value="4"/>
//	  </editor>
//	  <recent type="string" value="a.txt"/>
//	  <recent type="string" value="b.txt"/>
//	</nodeconf>
//
// holds editor.tabSize = [4] and recent = ["a.txt", "b.txt"].
//
// # Usage
//
//	f, err := config.OpenFile("settings.xml", config.NewDefaultRegistry(), config.Writable())
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//	if err := f.Load(); err != nil {
//	    return err
//	}
//	tab := config.Get(f, "editor.tabSize", 8)
//	second := config.GetAt(f, "recent", 1, "")
//	err = f.Set("recent", "c.txt", config.Append())
//	err = f.Save()
//
// Save writes values back into the nodes they were read from and removes
// every node which no longer holds a value, including unrelated nodes
// below the root.
//
// # Sub-configurations
//
// A node of type "config" is read as a *Sub, a store of its own rooted at
// that node. See Store.SubConfig.
package config
