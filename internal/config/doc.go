// Package config loads the optional YAML run configuration.
//
// Every field has a built-in default, so an empty file or no file at all
// reproduces the standard layout under ./data:
//
//	inputs:
//	  boundary_dir: ./data/json
//	  income:
//	    path: ./data/110_165-9.csv
//	  education:
//	    path: ./data/revnew.csv
//	    skip_rows: 1
//	outputs:
//	  merged: ./data/data.json
//	  absent: ./data/absent_keys.txt
//	  sqlite: ""            # empty disables the SQLite export
//	normalize:
//	  boundary:
//	    pattern: ...
//	    after: [{old: 前鎮-區, new: 前鎮區-}]
//	  education:
//	    before: [{old: "　", new: ""}, {old: 鳳山一, new: 鳳山區}]
//	residual:
//	  district_suffixes: [其他]
//	  villages: [其他, 合計]
//
// Replacement lists given in the file replace the defaults rather than
// extending them.
package config
