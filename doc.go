// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package textres reads text resources, like files, by path and reports
// failures as classified values instead of aborting.
//
// Every failure is an *AccessError whose Kind is one of NotFound,
// PermissionDenied or Other:
//
//	s, err := textres.New(textres.Dir("/etc/myapp")).ReadAllText(ctx, "motd.txt")
//	switch textres.KindOf(err) {
//	case 0:
//	    fmt.Println(s)
//	case textres.NotFound:
//	    // use a default
//	case textres.PermissionDenied, textres.Other:
//	    return err
//	}
//
// A missing resource can be created empty on demand:
//
//	h, err := acc.OpenOrCreate(ctx, "hello.txt", true)
//	if err != nil {
//	    return err
//	}
//	s, err := h.ReadAll()
//
// Whether a failure is fatal is always up to the caller.
package textres
