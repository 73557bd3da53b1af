package sqlinline

const QInsertCourse = `--sql c1c45c2f-0df1-4dac-beaa-b1023b3deb43
insert into courses (title, instructor, duration, level, price, rating, students, category, image)
values (?, ?, ?, ?, ?, ?, ?, ?, ?)
returning id;
`

const QListCourses = `--sql f9ea81ee-19ec-418f-8d7d-30bdb6bdf07c
select id, title, instructor, duration, level, price, rating, students, category, image
from courses
order by id;
`
