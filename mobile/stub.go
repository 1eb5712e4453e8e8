//go:build !mobile

// 普通构建时 mobile 包只有这个文件，保证 go test ./... 和 go vet ./... 能遍历到它。
// 绑定入口在 mobile.go，需要 -tags mobile 和 make prepare-mobile。
package mobile
