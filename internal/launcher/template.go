// Package launcher renders and writes the generated launcher script.
package launcher

// scriptTemplate is the launcher script rendered for every generated app.
// It is an immutable value parameterized purely by three already-escaped
// strings: window title, URL literal, and icon path. The launcher runtime
// (PyQt5 with a web view) is an external collaborator; the template is
// opaque text from this package's point of view.
//
// Substitution order: title, icon path, URL literal.
const scriptTemplate = `import sys
import os
from PyQt5 import QtWidgets, QtGui
from PyQt5.QtWebEngineWidgets import QWebEngineView
from PyQt5.QtCore import QUrl

def main():
    app = QtWidgets.QApplication(sys.argv)
    win = QtWidgets.QMainWindow()
    win.setWindowTitle("%s")
    win.resize(1024, 768)
    icon_path = "%s"
    if icon_path and os.path.exists(icon_path):
        win.setWindowIcon(QtGui.QIcon(icon_path))
    view = QWebEngineView()
    view.setUrl(QUrl(%s))
    win.setCentralWidget(view)
    win.show()
    sys.exit(app.exec_())

if __name__ == "__main__":
    main()
`
