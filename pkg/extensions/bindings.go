package extensions

import (
	"encoding/json"

	v8 "rogchap.com/v8go"
)

// bindHostOps installs the __nova_* native functions hostOpsPrelude
// wraps into the clipboard/notify/storage/fetch/fs/prefs namespaces.
// Every binding is a thin, synchronous adapter onto hostCtx; argument
// marshaling errors and permission denials both surface as thrown JS
// exceptions via v8go's error-return convention.
func bindHostOps(iso *v8.Isolate, global *v8.ObjectTemplate, hostCtx *Context) error {
	bind := func(name string, fn v8.FunctionCallback) error {
		return global.Set(name, v8.NewFunctionTemplate(iso, fn))
	}

	if err := bind("__nova_clipboard_read", func(info *v8.FunctionCallbackInfo) *v8.Value {
		text, err := hostCtx.ClipboardRead()
		if err != nil {
			return throwError(iso, err)
		}
		return mustString(iso, text)
	}); err != nil {
		return err
	}

	if err := bind("__nova_clipboard_write", func(info *v8.FunctionCallbackInfo) *v8.Value {
		text := argString(info, 0)
		if err := hostCtx.ClipboardWrite(text); err != nil {
			return throwError(iso, err)
		}
		return mustUndefined(iso)
	}); err != nil {
		return err
	}

	if err := bind("__nova_notify", func(info *v8.FunctionCallbackInfo) *v8.Value {
		title, body := argString(info, 0), argString(info, 1)
		if err := hostCtx.Notify(title, body); err != nil {
			return throwError(iso, err)
		}
		return mustUndefined(iso)
	}); err != nil {
		return err
	}

	if err := bind("__nova_storage_get", func(info *v8.FunctionCallbackInfo) *v8.Value {
		key := argString(info, 0)
		value, ok, err := hostCtx.StorageGet(key)
		if err != nil {
			return throwError(iso, err)
		}
		if !ok {
			return mustString(iso, "null")
		}
		return mustString(iso, string(value))
	}); err != nil {
		return err
	}

	if err := bind("__nova_storage_set", func(info *v8.FunctionCallbackInfo) *v8.Value {
		key, raw := argString(info, 0), argString(info, 1)
		if err := hostCtx.StorageSet(key, json.RawMessage(raw)); err != nil {
			return throwError(iso, err)
		}
		return mustUndefined(iso)
	}); err != nil {
		return err
	}

	if err := bind("__nova_storage_delete", func(info *v8.FunctionCallbackInfo) *v8.Value {
		key := argString(info, 0)
		if err := hostCtx.StorageDelete(key); err != nil {
			return throwError(iso, err)
		}
		return mustUndefined(iso)
	}); err != nil {
		return err
	}

	if err := bind("__nova_fetch", func(info *v8.FunctionCallbackInfo) *v8.Value {
		target := argString(info, 0)
		status, body, err := hostCtx.Fetch(target)
		if err != nil {
			return throwError(iso, err)
		}
		encoded, _ := json.Marshal(map[string]any{"status": status, "body": body})
		return mustString(iso, string(encoded))
	}); err != nil {
		return err
	}

	if err := bind("__nova_fs_read", func(info *v8.FunctionCallbackInfo) *v8.Value {
		path := argString(info, 0)
		content, err := hostCtx.FSRead(path)
		if err != nil {
			return throwError(iso, err)
		}
		return mustString(iso, content)
	}); err != nil {
		return err
	}

	if err := bind("__nova_fs_write", func(info *v8.FunctionCallbackInfo) *v8.Value {
		path, content := argString(info, 0), argString(info, 1)
		if err := hostCtx.FSWrite(path, content); err != nil {
			return throwError(iso, err)
		}
		return mustUndefined(iso)
	}); err != nil {
		return err
	}

	if err := bind("__nova_pref_get", func(info *v8.FunctionCallbackInfo) *v8.Value {
		name := argString(info, 0)
		value, ok := hostCtx.PrefGet(name)
		if !ok {
			return mustString(iso, "null")
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return mustString(iso, "null")
		}
		return mustString(iso, string(encoded))
	}); err != nil {
		return err
	}

	return nil
}

func argString(info *v8.FunctionCallbackInfo, index int) string {
	args := info.Args()
	if index >= len(args) {
		return ""
	}
	return args[index].String()
}

func mustString(iso *v8.Isolate, s string) *v8.Value {
	v, err := v8.NewValue(iso, s)
	if err != nil {
		v, _ = v8.NewValue(iso, "")
	}
	return v
}

func mustUndefined(iso *v8.Isolate) *v8.Value {
	v, _ := v8.NewValue(iso, true)
	return v
}

// throwError surfaces a Go error to JS as a thrown exception, caught by
// the try/catch in __nova_invoke and reported back through the
// {error: ...} envelope.
func throwError(iso *v8.Isolate, err error) *v8.Value {
	return iso.ThrowException(mustString(iso, err.Error()))
}
